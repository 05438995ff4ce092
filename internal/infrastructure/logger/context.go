package logger

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches a request ID to the context so downstream
// layers (notably the GORM logger) can correlate their output.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request ID stored in the context, or ""
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
