package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hockeystats-api/pkg/lambda"
)

func TestAdapter_APIGatewayEvents(t *testing.T) {
	h, _ := newTestHandler(t)
	adapter := lambda.NewAdapter(h.Handler(), quietLogger())
	ctx := context.Background()

	addEvent, err := json.Marshal(events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/add",
		QueryStringParameters: map[string]string{"id": "42", "name": "Gretzky"},
	})
	require.NoError(t, err)

	out, err := adapter.Invoke(ctx, addEvent)
	require.NoError(t, err)
	addResp, ok := out.(events.APIGatewayProxyResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, addResp.StatusCode)
	assert.JSONEq(t, `{"message":"Item added"}`, addResp.Body)

	fetchResp, err := adapter.HandleAPIGateway(ctx, events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/fetch",
		Headers:               map[string]string{"host": "api.example.com"},
		QueryStringParameters: map[string]string{"id": "42"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, fetchResp.StatusCode)
	assert.JSONEq(t, `{"id":"42","name":"Gretzky"}`, fetchResp.Body)
	assert.NotEmpty(t, fetchResp.Headers[lambda.RequestIDHeader])
}

func TestAdapter_FunctionURLEvents(t *testing.T) {
	h, store := newTestHandler(t)
	adapter := lambda.NewAdapter(h.Handler(), quietLogger())
	ctx := context.Background()

	addResp, err := adapter.HandleFunctionURL(ctx, events.LambdaFunctionURLRequest{
		Version:        "2.0",
		RawPath:        "/",
		RawQueryString: "action=add",
		Headers:        map[string]string{"content-type": "application/json"},
		Body:           `{"id":"42","name":"Gretzky"}`,
		RequestContext: events.LambdaFunctionURLRequestContext{
			DomainName: "abc.lambda-url.us-east-1.on.aws",
			HTTP:       events.LambdaFunctionURLRequestContextHTTPDescription{Method: http.MethodPost},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, addResp.StatusCode)
	assert.Equal(t, 1, store.Len())

	missing, err := adapter.HandleFunctionURL(ctx, events.LambdaFunctionURLRequest{
		Version:        "2.0",
		RawPath:        "/fetch",
		RequestContext: events.LambdaFunctionURLRequestContext{
			HTTP: events.LambdaFunctionURLRequestContextHTTPDescription{Method: http.MethodGet},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)
	assert.JSONEq(t, `{"error":"Missing id"}`, missing.Body)
}
