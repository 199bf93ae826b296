// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "pinboard/internal/delivery/context"
	"pinboard/internal/domain/entity"
	domainerrors "pinboard/internal/domain/errors"
	"pinboard/internal/domain/repository"
	"pinboard/internal/domain/service"
	"pinboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minSecretLength is the source policy, deliberately weak. Do not raise it
// without an explicit decision.
const minSecretLength = 5

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	identityRepo repository.IdentityRepository
	hasher       service.SecretHasher
	tokenGen     service.TokenGenerator
	logger       *slog.Logger
}

// CredentialServiceParams holds dependencies for credentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Hasher       service.SecretHasher
	TokenGen     service.TokenGenerator
	Logger       *slog.Logger
}

// NewCredentialService is the constructor for credentialService. It receives all dependencies as interfaces.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		tokenGen:     params.TokenGen,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new identity. Validation happens as explicit checks
// before any hashing or persistence work; each failed check returns and
// nothing is persisted.
func (srv *credentialService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.CredentialOutput, error) {
	if err := validateRegistration(input); err != nil {
		srv.log(ctx).Warn("Registration input rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	secretHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash secret during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash secret during registration")
	}

	// The token is minted here, before the identity is constructed, so the
	// entropy policy stays in one visible place instead of a storage default.
	accessToken, err := srv.tokenGen.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token during registration")
	}

	identity := &entity.Identity{
		Username:    input.Username,
		SecretHash:  secretHash,
		AccessToken: accessToken,
	}

	if err := srv.identityRepo.Insert(ctx, identity); err != nil {
		srv.log(ctx).Warn("Failed to insert identity", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to insert identity during registration")
	}

	srv.log(ctx).Info("Identity registered", slog.Any("userID", identity.ID), slog.String("username", identity.Username))

	return &usecase.CredentialOutput{
		UserID:      identity.ID,
		Username:    identity.Username,
		AccessToken: identity.AccessToken,
	}, nil
}

// Verify checks a username/secret pair against the store. An unknown
// username and a wrong secret return the identical error, so the caller
// cannot learn which field was wrong.
func (srv *credentialService) Verify(ctx context.Context, input *usecase.VerifyInput) (*usecase.CredentialOutput, error) {
	identity, err := srv.identityRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			srv.log(ctx).Warn("Verification failed: unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrCredentialMismatch.WrapMessage("username not found")
		}

		return nil, errors.Wrap(err, "failed to find identity during verification")
	}

	if !srv.hasher.Check(input.Password, identity.SecretHash) {
		srv.log(ctx).Warn("Verification failed: secret mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrCredentialMismatch.WrapMessage("secret mismatch")
	}

	// The stored token is returned unchanged; verification never mints one.
	return &usecase.CredentialOutput{
		UserID:      identity.ID,
		Username:    identity.Username,
		AccessToken: identity.AccessToken,
	}, nil
}

func validateRegistration(input *usecase.RegisterInput) error {
	if input.Username == "" {
		return domainerrors.ErrUsernameEmpty
	}
	if len(input.Password) < minSecretLength {
		return domainerrors.ErrSecretTooShort
	}

	return nil
}
