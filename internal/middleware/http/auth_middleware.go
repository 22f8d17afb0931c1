package http

import (
	"net/http"
	"strings"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/identity"
	"github.com/EmreNP/sendikaapp-sub000/internal/logic"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
	"github.com/EmreNP/sendikaapp-sub000/internal/service"
)

// AuthMiddleware defines the function signature for our authentication middleware.
type AuthMiddleware func(http.Handler) http.Handler

// TokenMiddleware verifies the bearer token only, without requiring a member
// document. The registration route uses it: at that point the identity exists
// but the member does not yet.
type TokenMiddleware func(http.Handler) http.Handler

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// NewTokenMiddleware creates a middleware that verifies the bearer token and
// stores the verified identity on the context.
func NewTokenMiddleware(provider identity.Provider, responder *service.Responder) TokenMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				responder.Error(w, apperrors.Authentication("MISSING_TOKEN", "bearer token is required"))
				return
			}

			token, err := provider.VerifyToken(r.Context(), raw)
			if err != nil {
				responder.Error(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(service.WithToken(r.Context(), token)))
		})
	}
}

// NewAuthMiddleware creates the full authentication middleware: verify the
// bearer token, then load the member behind it and require the account to be
// enabled. The loaded member becomes the actor for downstream handlers.
func NewAuthMiddleware(provider identity.Provider, members logic.MemberLogic, responder *service.Responder) AuthMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				responder.Error(w, apperrors.Authentication("MISSING_TOKEN", "bearer token is required"))
				return
			}

			token, err := provider.VerifyToken(r.Context(), raw)
			if err != nil {
				responder.Error(w, err)
				return
			}

			// Self-lookup: the caller fetches their own record.
			actor, err := members.GetMember(r.Context(), &models.Member{UID: token.UID}, token.UID)
			if err != nil {
				responder.Error(w, apperrors.Authentication("UNKNOWN_MEMBER", "no member account for this identity"))
				return
			}
			if !actor.IsActive {
				responder.Error(w, apperrors.Authentication("ACCOUNT_DISABLED", "account is disabled"))
				return
			}

			next.ServeHTTP(w, r.WithContext(service.WithActor(r.Context(), actor)))
		})
	}
}
