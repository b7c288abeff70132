package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"hockeystats-api/internal/models"
)

// DynamoDBAPI is the subset of the DynamoDB client used by DynamoItemStore
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newDynamoDBClient = func(cfg aws.Config, optFns ...func(*dynamodb.Options)) DynamoDBAPI {
		return dynamodb.NewFromConfig(cfg, optFns...)
	}
)

// DynamoItemStore keeps items in a single DynamoDB table with a string
// partition key named "id".
type DynamoItemStore struct {
	client    DynamoDBAPI
	tableName string
}

// NewDynamoItemStore creates a store over an existing client
func NewDynamoItemStore(client DynamoDBAPI, tableName string) (*DynamoItemStore, error) {
	if client == nil {
		return nil, fmt.Errorf("dynamodb client is required")
	}
	if tableName == "" {
		return nil, fmt.Errorf("table name is required")
	}
	return &DynamoItemStore{client: client, tableName: tableName}, nil
}

// NewDynamoItemStoreFromConfig loads the default AWS credential chain and
// builds a client for the configured region and optional endpoint.
func NewDynamoItemStoreFromConfig(ctx context.Context, config *StorageConfig) (*DynamoItemStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if config.Region != "" {
		opts = append(opts, awsconfig.WithRegion(config.Region))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := newDynamoDBClient(cfg, func(o *dynamodb.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
	})

	return NewDynamoItemStore(client, config.TableName)
}

// Put implements ItemStore.Put
func (s *DynamoItemStore) Put(ctx context.Context, item *models.Item) error {
	if item == nil || item.ID == "" {
		return NewStorageError("Put", "", ErrInvalidKey)
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return NewStorageError("Put", item.ID, fmt.Errorf("%w: %v", ErrInvalidItem, err))
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return NewStorageError("Put", item.ID, describe(err))
	}

	return nil
}

// Get implements ItemStore.Get
func (s *DynamoItemStore) Get(ctx context.Context, id string) (*models.Item, error) {
	if id == "" {
		return nil, NewStorageError("Get", id, ErrInvalidKey)
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, NewStorageError("Get", id, describe(err))
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var item models.Item
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, NewStorageError("Get", id, fmt.Errorf("%w: %v", ErrInvalidItem, err))
	}

	return &item, nil
}

// Close implements ItemStore.Close. The SDK client holds no resources.
func (s *DynamoItemStore) Close() error {
	return nil
}

// TableName returns the table the store writes to
func (s *DynamoItemStore) TableName() string {
	return s.tableName
}

// describe strips the SDK's operation envelope from service errors so that
// callers see the message DynamoDB returned, e.g. "Requested resource not found".
func describe(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return &apiError{message: apiErr.ErrorMessage(), err: err}
	}
	return err
}

type apiError struct {
	message string
	err     error
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Unwrap() error { return e.err }
