package core

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches a request id used to correlate log entries
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the request id or an empty string
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
