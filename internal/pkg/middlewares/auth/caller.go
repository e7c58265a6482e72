package auth

import (
	"context"

	"loadhive/internal/entities"
)

type callerKey struct{}

func WithCaller(ctx context.Context, caller entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFromContext(ctx context.Context) (entities.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(entities.Caller)
	return caller, ok
}
