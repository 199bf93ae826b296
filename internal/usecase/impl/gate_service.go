package impl

import (
	"context"
	"log/slog"

	deliverycontext "pinboard/internal/delivery/context"
	domainerrors "pinboard/internal/domain/errors"
	"pinboard/internal/domain/repository"
	"pinboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessGate implements the AccessGate interface with a single store read
// per check. It holds no cross-request state and never mutates the store.
type accessGate struct {
	identityRepo repository.IdentityRepository
	logger       *slog.Logger
}

// AccessGateParams holds dependencies for accessGate, injected by Fx.
type AccessGateParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Logger       *slog.Logger
}

// NewAccessGate is the constructor for accessGate.
func NewAccessGate(params AccessGateParams) usecase.AccessGate {
	return &accessGate{
		identityRepo: params.IdentityRepo,
		logger:       params.Logger,
	}
}

func (g *accessGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Check allows continuation iff the presented token exactly matches a stored
// access token. The decision is made once and is final for the request.
func (g *accessGate) Check(ctx context.Context, token string) error {
	if token == "" {
		return domainerrors.ErrUnauthorized.WrapMessage("no token presented")
	}

	if _, err := g.identityRepo.FindByToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return domainerrors.ErrUnauthorized.WrapMessage("unknown token")
		}

		// Store trouble is not the caller's fault; report it as a distinct
		// failure so "could not check" never masquerades as "invalid".
		g.log(ctx).Error("Gate lookup failed", slog.Any("error", err))

		return domainerrors.ErrCredentialLookup.WrapMessage("token lookup failed")
	}

	return nil
}
