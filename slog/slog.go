// Package slog provides decorators that log each pipeline step with
// log/slog.
package slog

import "context"

type requestIDKey struct{}

// WithRequestID returns a context carrying id, which the decorators in this
// package add to every line they log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func requestAttrs(ctx context.Context, args ...any) []any {
	if id := RequestID(ctx); id != "" {
		return append([]any{"request_id", id}, args...)
	}
	return args
}
