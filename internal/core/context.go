package core

import "context"

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying the per-event
// correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID extracts the per-event correlation id, or "" when the
// context carries none.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}
