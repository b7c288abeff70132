package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hockeystats-api/internal/models"
)

// fakeDynamoDB keeps items keyed by the "id" string attribute
type fakeDynamoDB struct {
	items   map[string]map[string]types.AttributeValue
	err     error
	lastPut *dynamodb.PutItemInput
	lastGet *dynamodb.GetItemInput
}

func newFakeDynamoDB() *fakeDynamoDB {
	return &fakeDynamoDB{items: make(map[string]map[string]types.AttributeValue)}
}

func (f *fakeDynamoDB) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.err != nil {
		return nil, f.err
	}
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.lastGet = in
	if f.err != nil {
		return nil, f.err
	}
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func TestDynamoItemStore_PutGet(t *testing.T) {
	client := newFakeDynamoDB()
	store, err := NewDynamoItemStore(client, "HockeyStats")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, models.NewItem("42", "Gretzky")))

	require.NotNil(t, client.lastPut)
	assert.Equal(t, "HockeyStats", aws.ToString(client.lastPut.TableName))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Gretzky"}, client.lastPut.Item["name"])
	assert.Nil(t, client.lastPut.ConditionExpression, "put must be unconditional")

	item, err := store.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, &models.Item{ID: "42", Name: "Gretzky"}, item)
	assert.True(t, aws.ToBool(client.lastGet.ConsistentRead))
	assert.Equal(t, "HockeyStats", aws.ToString(client.lastGet.TableName))
}

func TestDynamoItemStore_GetMissing(t *testing.T) {
	store, err := NewDynamoItemStore(newFakeDynamoDB(), "HockeyStats")
	require.NoError(t, err)

	item, err := store.Get(context.Background(), "99")
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestDynamoItemStore_ServiceErrorMessage(t *testing.T) {
	client := newFakeDynamoDB()
	client.err = &smithy.OperationError{
		ServiceID:     "DynamoDB",
		OperationName: "PutItem",
		Err: &smithy.GenericAPIError{
			Code:    "ResourceNotFoundException",
			Message: "Requested resource not found",
		},
	}
	store, _ := NewDynamoItemStore(client, "Missing")

	err := store.Put(context.Background(), models.NewItem("1", "a"))
	require.Error(t, err)

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "Put", storageErr.Op)
	assert.Equal(t, "Requested resource not found", storageErr.Description())

	var apiErr smithy.APIError
	assert.True(t, errors.As(err, &apiErr), "original SDK error stays reachable")
}

func TestDynamoItemStore_PlainError(t *testing.T) {
	client := newFakeDynamoDB()
	client.err = errors.New("dial tcp: connection refused")
	store, _ := NewDynamoItemStore(client, "HockeyStats")

	_, err := store.Get(context.Background(), "1")

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "dial tcp: connection refused", storageErr.Description())
}

func TestDynamoItemStore_Validation(t *testing.T) {
	_, err := NewDynamoItemStore(nil, "t")
	assert.Error(t, err)

	_, err = NewDynamoItemStore(newFakeDynamoDB(), "")
	assert.Error(t, err)

	store, _ := NewDynamoItemStore(newFakeDynamoDB(), "t")
	assert.ErrorIs(t, store.Put(context.Background(), nil), ErrInvalidKey)
	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewDynamoItemStoreFromConfig(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newDynamoDBClient
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newDynamoDBClient = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "eu-west-1", lo.Region)
		return aws.Config{}, nil
	}

	var endpoint string
	client := newFakeDynamoDB()
	newDynamoDBClient = func(cfg aws.Config, optFns ...func(*dynamodb.Options)) DynamoDBAPI {
		var opts dynamodb.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		endpoint = aws.ToString(opts.BaseEndpoint)
		return client
	}

	store, err := NewDynamoItemStoreFromConfig(context.Background(), &StorageConfig{
		TableName: "HockeyStats",
		Region:    "eu-west-1",
		Endpoint:  "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.Equal(t, "HockeyStats", store.TableName())
	assert.Equal(t, "http://localhost:8000", endpoint)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = NewDynamoItemStoreFromConfig(context.Background(), &StorageConfig{TableName: "t"})
	assert.ErrorContains(t, err, "load-fail")
}
