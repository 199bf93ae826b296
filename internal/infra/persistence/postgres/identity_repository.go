// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pinboard/internal/domain/entity"
	domainerrors "pinboard/internal/domain/errors"
	"pinboard/internal/domain/repository"
	"pinboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// identityRepository implements the repository.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
// It returns the repository as a repository.IdentityRepository interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{
		db: db,
	}
}

// Insert persists a new identity. The database's unique constraint on
// username arbitrates concurrent registration: when two inserts race, one
// commits and the other surfaces here as a unique violation.
func (repo *identityRepository) Insert(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		// The unique access_token constraint also lands here; with 128 bytes
		// of token entropy a collision is not a case worth distinguishing.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrIdentityCreationFailed.WrapMessage("missing required identity information")
		}

		return domainerrors.NewStoreExecuteError(err, "failed to insert identity")
	}

	// Carry the generated values back into the entity.
	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt

	return nil
}

// FindByUsername retrieves a single identity by its exact username.
func (repo *identityRepository) FindByUsername(ctx context.Context, username string) (*entity.Identity, error) {
	var identityM model.IdentityModel

	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&identityM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by username")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByToken retrieves the identity holding the given access token.
func (repo *identityRepository) FindByToken(ctx context.Context, token string) (*entity.Identity, error) {
	var identityM model.IdentityModel

	err := repo.db.WithContext(ctx).
		Where("access_token = ?", token).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by token")
	}

	return toIdentityDomain(&identityM), nil
}

// fromIdentityDomain maps a pure domain entity to a GORM persistence model.
func fromIdentityDomain(identity *entity.Identity) *model.IdentityModel {
	return &model.IdentityModel{
		ID:          identity.ID,
		Username:    identity.Username,
		SecretHash:  identity.SecretHash,
		AccessToken: identity.AccessToken,
		CreatedAt:   identity.CreatedAt,
	}
}

// toIdentityDomain maps a persistence model back to a pure domain entity.
func toIdentityDomain(identityM *model.IdentityModel) *entity.Identity {
	return &entity.Identity{
		ID:          identityM.ID,
		Username:    identityM.Username,
		SecretHash:  identityM.SecretHash,
		AccessToken: identityM.AccessToken,
		CreatedAt:   identityM.CreatedAt,
	}
}
