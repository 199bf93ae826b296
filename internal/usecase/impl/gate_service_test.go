package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pinboard/internal/domain/entity"
	domainerrors "pinboard/internal/domain/errors"
	"pinboard/internal/domain/repository"
	mockRepo "pinboard/internal/mocks/repository"
	"pinboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessGateFixtures struct {
	gate         usecase.AccessGate
	identityRepo *mockRepo.MockIdentityRepository
}

func createTestAccessGate(t *testing.T) accessGateFixtures {
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gate := NewAccessGate(AccessGateParams{
		IdentityRepo: identityRepo,
		Logger:       logger,
	})

	return accessGateFixtures{
		gate:         gate,
		identityRepo: identityRepo,
	}
}

func TestAccessGate_Check_ValidToken(t *testing.T) {
	fx := createTestAccessGate(t)

	ctx := context.Background()
	stored := &entity.Identity{
		ID:          uuid.New(),
		Username:    "alice",
		AccessToken: "valid_token",
	}

	fx.identityRepo.EXPECT().FindByToken(ctx, "valid_token").Return(stored, nil)

	err := fx.gate.Check(ctx, "valid_token")

	assert.NoError(t, err)
}

func TestAccessGate_Check_EmptyToken(t *testing.T) {
	fx := createTestAccessGate(t)

	err := fx.gate.Check(context.Background(), "")

	// An absent token never reaches the store.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAccessGate_Check_UnknownToken(t *testing.T) {
	fx := createTestAccessGate(t)

	ctx := context.Background()

	fx.identityRepo.EXPECT().
		FindByToken(ctx, "garbage_token").
		Return(nil, repository.ErrIdentityNotFound)

	err := fx.gate.Check(ctx, "garbage_token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAccessGate_Check_StoreFailure(t *testing.T) {
	fx := createTestAccessGate(t)

	ctx := context.Background()

	fx.identityRepo.EXPECT().
		FindByToken(ctx, "some_token").
		Return(nil, domainerrors.NewStoreExecuteError(errors.New("connection reset"), "find identity by token"))

	err := fx.gate.Check(ctx, "some_token")

	// A store failure is reported as its own condition, not as a bad token.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialLookup))
	assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
