// Package identity fronts the external identity store. Accounts authenticate
// with bearer tokens minted by the identity issuer; this package verifies
// those tokens and manages the identity records that back them.
package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/mongodb"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
	"github.com/EmreNP/sendikaapp-sub000/pkg/jwt"
)

// ErrIdentityNotFound reports a uid with no identity record behind it.
// Deletion paths tolerate it: a member whose identity is already gone can
// still be removed.
var ErrIdentityNotFound = errors.New("identity not found")

// Token is the verified content of a bearer token.
type Token struct {
	UID   string
	Email string
}

// Provider verifies bearer tokens and manages identity records.
type Provider interface {
	VerifyToken(ctx context.Context, token string) (*Token, error)
	GetByUID(ctx context.Context, uid string) (*models.Identity, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
	Create(ctx context.Context, identity *models.Identity) error
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	Delete(ctx context.Context, uid string) error
}

type provider struct {
	tokens     *jwt.Manager
	identities repository.IdentityRepository
	logger     *zap.Logger
}

func NewProvider(tokens *jwt.Manager, identities repository.IdentityRepository, logger *zap.Logger) Provider {
	return &provider{
		tokens:     tokens,
		identities: identities,
		logger:     logger.Named("identity"),
	}
}

// VerifyToken checks the token signature and expiry, then confirms the
// identity behind it still exists and is not disabled. Disabled identities
// fail verification even when the token itself is still valid.
func (p *provider) VerifyToken(ctx context.Context, token string) (*Token, error) {
	claims, err := p.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.Authentication("INVALID_TOKEN", "invalid or expired token").WithCause(err)
	}
	if claims.Subject == "" {
		return nil, apperrors.Authentication("INVALID_TOKEN", "token has no subject")
	}

	record, err := p.identities.GetIdentityByUID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, apperrors.Authentication("UNKNOWN_IDENTITY", "identity no longer exists")
		}
		return nil, apperrors.FromError(err)
	}
	if record.Disabled {
		return nil, apperrors.Authentication("IDENTITY_DISABLED", "identity is disabled")
	}

	return &Token{UID: record.UID, Email: record.Email}, nil
}

func (p *provider) GetByUID(ctx context.Context, uid string) (*models.Identity, error) {
	record, err := p.identities.GetIdentityByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	return record, nil
}

func (p *provider) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	record, err := p.identities.GetIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	return record, nil
}

func (p *provider) Create(ctx context.Context, identity *models.Identity) error {
	return p.identities.CreateIdentity(ctx, identity)
}

func (p *provider) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	if err := p.identities.SetIdentityDisabled(ctx, uid, disabled); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return ErrIdentityNotFound
		}
		return err
	}
	return nil
}

func (p *provider) Delete(ctx context.Context, uid string) error {
	if err := p.identities.DeleteIdentity(ctx, uid); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return ErrIdentityNotFound
		}
		return err
	}
	return nil
}
