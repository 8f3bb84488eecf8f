package contextutil

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID pulls the request ID out of the standard context. Propagation
// into the request context happens in the RequestID middleware.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects the ID into a context (also handy in unit tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
