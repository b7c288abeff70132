package lambda

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// DefaultHost is used to build the request URL when the event carries no Host header
const DefaultHost = "localhost"

// EventShape identifies which front delivered an invocation
type EventShape string

const (
	ShapeAPIGateway  EventShape = "apigateway"
	ShapeFunctionURL EventShape = "function_url"
)

// ErrUnsupportedEvent is returned for payloads that are neither an API
// Gateway proxy event nor a function URL event
var ErrUnsupportedEvent = errors.New("unsupported lambda event")

// NewRequest builds a normalized request with an absolute https URL.
// An empty host falls back to DefaultHost.
func NewRequest(method, host, path, rawQuery string, headers map[string]string, body []byte) *Request {
	if host == "" {
		host = DefaultHost
	}
	if path == "" {
		path = "/"
	}
	if headers == nil {
		headers = make(map[string]string)
	}

	req := &Request{
		Method:      strings.ToUpper(method),
		Path:        path,
		URL:         &url.URL{Scheme: "https", Host: host, Path: path, RawQuery: rawQuery},
		Headers:     headers,
		QueryParams: firstValues(rawQuery),
		Body:        body,
		PathParams:  make(map[string]string),
	}
	return req
}

// FromAPIGateway converts an API Gateway REST proxy event. The gateway hands
// over loose fields rather than a request, so the host and URL are
// synthesized here.
func FromAPIGateway(event events.APIGatewayProxyRequest) (*Request, error) {
	body, err := decodeBody(event.Body, event.IsBase64Encoded)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(event.Headers))
	for k, v := range event.MultiValueHeaders {
		if len(v) > 0 {
			headers[k] = strings.Join(v, ",")
		}
	}
	for k, v := range event.Headers {
		headers[k] = v
	}

	query := url.Values{}
	for k, v := range event.QueryStringParameters {
		query.Set(k, v)
	}
	for k, v := range event.MultiValueQueryStringParameters {
		query[k] = v
	}

	req := NewRequest(event.HTTPMethod, headerValue(headers, "Host"), event.Path, query.Encode(), headers, body)
	for k, v := range event.PathParameters {
		req.PathParams[k] = v
	}
	return req, nil
}

// ToAPIGatewayResponse converts a handler response for API Gateway
func ToAPIGatewayResponse(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// FromFunctionURL converts a function URL (payload format 2.0) event
func FromFunctionURL(event events.LambdaFunctionURLRequest) (*Request, error) {
	body, err := decodeBody(event.Body, event.IsBase64Encoded)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(event.Headers))
	for k, v := range event.Headers {
		headers[k] = v
	}

	host := headerValue(headers, "Host")
	if host == "" {
		host = event.RequestContext.DomainName
	}

	return NewRequest(event.RequestContext.HTTP.Method, host, event.RawPath, event.RawQueryString, headers, body), nil
}

// ToFunctionURLResponse converts a handler response for a function URL
func ToFunctionURLResponse(resp *Response) events.LambdaFunctionURLResponse {
	return events.LambdaFunctionURLResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// FromHTTPRequest converts a net/http request, used when the service runs as
// a plain HTTP server. The body is read fully and restored on r.
func FromHTTPRequest(r *http.Request) (*Request, error) {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
	}

	headers := make(map[string]string, len(r.Header)+1)
	for k, v := range r.Header {
		headers[k] = strings.Join(v, ",")
	}
	if r.Host != "" {
		headers["Host"] = r.Host
	}

	req := NewRequest(r.Method, r.Host, r.URL.Path, r.URL.RawQuery, headers, body)
	if r.TLS == nil {
		req.URL.Scheme = "http"
	}
	return req, nil
}

// WriteHTTPResponse writes resp to w
func WriteHTTPResponse(w http.ResponseWriter, resp *Response) error {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, err := w.Write(resp.Body)
	return err
}

// DetectEventShape inspects a raw invocation payload
func DetectEventShape(payload json.RawMessage) (EventShape, error) {
	var probe struct {
		Version        string `json:"version"`
		HTTPMethod     string `json:"httpMethod"`
		RequestContext struct {
			HTTP struct {
				Method string `json:"method"`
			} `json:"http"`
		} `json:"requestContext"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedEvent, err)
	}

	switch {
	case probe.Version == "2.0" && probe.RequestContext.HTTP.Method != "":
		return ShapeFunctionURL, nil
	case probe.HTTPMethod != "":
		return ShapeAPIGateway, nil
	default:
		return "", ErrUnsupportedEvent
	}
}

// Adapter serves a HandlerFunc to the Lambda runtime for both event shapes
type Adapter struct {
	handler HandlerFunc
	logger  *logrus.Logger
}

// NewAdapter creates a new Adapter
func NewAdapter(handler HandlerFunc, logger *logrus.Logger) *Adapter {
	if logger == nil {
		logger = logrus.New()
	}
	return &Adapter{handler: handler, logger: logger}
}

// Invoke is the function registered with the Lambda runtime
func (a *Adapter) Invoke(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	shape, err := DetectEventShape(payload)
	if err != nil {
		return nil, err
	}

	switch shape {
	case ShapeFunctionURL:
		var event events.LambdaFunctionURLRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to decode function URL event: %w", err)
		}
		return a.HandleFunctionURL(ctx, event)
	default:
		var event events.APIGatewayProxyRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to decode API Gateway event: %w", err)
		}
		return a.HandleAPIGateway(ctx, event)
	}
}

// HandleAPIGateway serves one API Gateway proxy event
func (a *Adapter) HandleAPIGateway(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := FromAPIGateway(event)
	if err != nil {
		a.logger.WithError(err).Warn("Failed to normalize API Gateway event")
		return ToAPIGatewayResponse(badRequestResponse()), nil
	}
	return ToAPIGatewayResponse(a.serve(ctx, req)), nil
}

// HandleFunctionURL serves one function URL event
func (a *Adapter) HandleFunctionURL(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	req, err := FromFunctionURL(event)
	if err != nil {
		a.logger.WithError(err).Warn("Failed to normalize function URL event")
		return ToFunctionURLResponse(badRequestResponse()), nil
	}
	return ToFunctionURLResponse(a.serve(ctx, req)), nil
}

func (a *Adapter) serve(ctx context.Context, req *Request) *Response {
	resp, err := a.handler(ctx, req)
	if err != nil || resp == nil {
		a.logger.WithError(err).WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.Path,
		}).Error("Handler failed")
		return internalErrorResponse()
	}
	return resp
}

func badRequestResponse() *Response {
	return &Response{
		StatusCode: http.StatusBadRequest,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"error":"Malformed request body"}`),
	}
}

func decodeBody(body string, isBase64 bool) ([]byte, error) {
	if !isBase64 {
		return []byte(body), nil
	}
	decoded, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 body: %w", err)
	}
	return decoded, nil
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func firstValues(rawQuery string) map[string]string {
	params := make(map[string]string)
	// ParseQuery keeps every pair it could decode, even on error
	values, _ := url.ParseQuery(rawQuery)
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}
