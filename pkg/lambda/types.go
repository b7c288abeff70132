package lambda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// Request represents a generic HTTP request for serverless functions.
// Every inbound front (API Gateway, function URL, net/http) is converted to
// this shape before it reaches a handler.
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	URL         *url.URL          `json:"-"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// Header returns the named header, matched case-insensitively
func (r *Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Query returns the named query parameter, or "" if absent
func (r *Request) Query(name string) string {
	return r.QueryParams[name]
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// SetHeader sets a response header, allocating the map if needed
func (r *Response) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[name] = value
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Middleware wraps a HandlerFunc
type Middleware func(next HandlerFunc) HandlerFunc

// Chain applies middlewares so that the first one listed runs first
func Chain(h HandlerFunc, middlewares ...Middleware) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// JSONResponse builds a response with v encoded as the JSON body
func JSONResponse(statusCode int, v interface{}) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}

// TextResponse builds a plain text response
func TextResponse(statusCode int, text string) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       []byte(text),
	}
}

// internalErrorResponse is returned when a handler fails without producing a response
func internalErrorResponse() *Response {
	return &Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"error":"An unexpected error occurred"}`),
	}
}
