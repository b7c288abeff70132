package lambda

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the per-request ID on responses
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the ID assigned by WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithRequestID assigns each request an ID: the caller's X-Request-ID if
// given, else the Lambda request ID, else a fresh UUID.
func WithRequestID() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *Request) (*Response, error) {
			requestID := req.Header(RequestIDHeader)
			if requestID == "" {
				if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
					requestID = lc.AwsRequestID
				}
			}
			if requestID == "" {
				requestID = uuid.New().String()
			}

			resp, err := next(context.WithValue(ctx, requestIDKey{}, requestID), req)
			if resp != nil {
				resp.SetHeader(RequestIDHeader, requestID)
			}
			return resp, err
		}
	}
}

// WithRequestLogging logs every inbound request (method, path, headers,
// query and body) before handing it on, and the outcome afterwards. It
// never changes control flow.
func WithRequestLogging(logger *logrus.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *Request) (*Response, error) {
			start := time.Now()
			requestID := RequestIDFromContext(ctx)

			logger.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     req.Method,
				"path":       req.Path,
				"headers":    req.Headers,
				"query":      req.QueryParams,
				"body":       string(req.Body),
			}).Info("Request data")

			resp, err := next(ctx, req)

			fields := logrus.Fields{
				"request_id": requestID,
				"method":     req.Method,
				"path":       req.Path,
				"latency_ms": float64(time.Since(start).Nanoseconds()) / 1000000,
			}
			if resp != nil {
				fields["status_code"] = resp.StatusCode
			}

			switch {
			case err != nil:
				logger.WithFields(fields).WithError(err).Error("Request failed")
			case resp != nil && resp.StatusCode >= 500:
				logger.WithFields(fields).Error("Server error")
			case resp != nil && resp.StatusCode >= 400:
				logger.WithFields(fields).Warn("Client error")
			default:
				logger.WithFields(fields).Info("Request completed")
			}

			return resp, err
		}
	}
}
