// Package obsctx carries request-scoped correlation identifiers.
package obsctx

import "context"

type ctxKey int

const (
	requestIDKey ctxKey = iota
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
