package http

import (
	"net/http"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/limiter"
	"github.com/EmreNP/sendikaapp-sub000/internal/service"
)

// CreateRateLimitMiddleware is a generator function that creates a rate-limiting middleware for a specific policy.
// The limit key is the authenticated identity; the auth or token middleware
// must run first.
func CreateRateLimitMiddleware(limiterManager *limiter.Manager, responder *service.Responder, policyName string) func(http.Handler) http.Handler {
	// Get the specific limiter for the policy once.
	policyLimiter := limiterManager.Get(policyName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var uid string
			if actor := service.ActorFromContext(r.Context()); actor != nil {
				uid = actor.UID
			} else if token := service.TokenFromContext(r.Context()); token != nil {
				uid = token.UID
			}
			if uid == "" {
				responder.Error(w, apperrors.Authentication("MISSING_IDENTITY", "caller identity not found"))
				return
			}

			allowed, err := policyLimiter.Allow(r.Context(), uid)
			if err != nil {
				responder.Error(w, apperrors.Internal("RATE_LIMIT_CHECK", "failed to check rate limit").WithCause(err))
				return
			}
			if !allowed {
				responder.Error(w, apperrors.RateLimited("RATE_LIMITED", "too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
