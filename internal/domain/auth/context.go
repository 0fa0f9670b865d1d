package auth

import (
	"context"

	"github.com/peoplehr/hr-backend-go/internal/domain/user"
)

type actorContextKey struct{}

// WithActor returns a context carrying the authenticated user. The
// actor is resolved from storage on every request, never cached in
// shared state, so role changes take effect on the next request.
func WithActor(ctx context.Context, actor user.User) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext returns the authenticated user for this request.
// Returns ErrUnauthenticated when no actor was attached.
func ActorFromContext(ctx context.Context) (user.User, error) {
	actor, ok := ctx.Value(actorContextKey{}).(user.User)
	if !ok {
		return user.User{}, ErrUnauthenticated
	}
	return actor, nil
}
