package service

import (
	"context"

	"github.com/EmreNP/sendikaapp-sub000/internal/identity"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	actorKey contextKey = "actor"
	tokenKey contextKey = "token"
)

// WithActor stores the authenticated member on the request context.
func WithActor(ctx context.Context, actor *models.Member) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the authenticated member, or nil when the request
// skipped the full auth middleware.
func ActorFromContext(ctx context.Context) *models.Member {
	actor, _ := ctx.Value(actorKey).(*models.Member)
	return actor
}

// WithToken stores the verified identity token on the request context. Used
// by the registration route, where no member document exists yet.
func WithToken(ctx context.Context, token *identity.Token) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the verified identity token, or nil.
func TokenFromContext(ctx context.Context) *identity.Token {
	token, _ := ctx.Value(tokenKey).(*identity.Token)
	return token
}
