package authctx

import (
	"context"

	"devsa-hub/backend/internal/domain/access"
)

type ctxKey string

const actorKey ctxKey = "actor"

func WithActor(ctx context.Context, a access.Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// Actor returns the resolved principal for the request. Requests that never
// went through the resolver read back as anonymous.
func Actor(ctx context.Context) access.Actor {
	if v, ok := ctx.Value(actorKey).(access.Actor); ok {
		return v
	}
	return access.Actor{Role: access.RoleAnonymous}
}
