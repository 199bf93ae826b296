package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pinboard/internal/domain/entity"
	domainerrors "pinboard/internal/domain/errors"
	mockRepo "pinboard/internal/mocks/repository"
	"pinboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordServiceFixtures struct {
	service    usecase.RecordUsecase
	recordRepo *mockRepo.MockRecordRepository
}

func createTestRecordService(t *testing.T) recordServiceFixtures {
	recordRepo := mockRepo.NewMockRecordRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRecordService(RecordServiceParams{
		RecordRepo: recordRepo,
		Logger:     logger,
	})

	return recordServiceFixtures{
		service:    service,
		recordRepo: recordRepo,
	}
}

func TestRecordService_CreateRecord_Success(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	recordID := uuid.New()

	fx.recordRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Record")).
		Run(func(ctx context.Context, record *entity.Record) {
			assert.Equal(t, "hello", record.Message)
			record.ID = recordID
		}).
		Return(nil)

	output, err := fx.service.CreateRecord(ctx, &usecase.CreateRecordInput{Message: "hello"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, recordID, output.RecordID)
	assert.Equal(t, "hello", output.Message)
}

func TestRecordService_CreateRecord_EmptyMessage(t *testing.T) {
	fx := createTestRecordService(t)

	output, err := fx.service.CreateRecord(context.Background(), &usecase.CreateRecordInput{Message: ""})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageEmpty))
}

func TestRecordService_ListRecords_Success(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	stored := []*entity.Record{
		{ID: uuid.New(), Message: "first"},
		{ID: uuid.New(), Message: "second"},
	}

	fx.recordRepo.EXPECT().List(ctx).Return(stored, nil)

	outputs, err := fx.service.ListRecords(ctx)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "first", outputs[0].Message)
	assert.Equal(t, "second", outputs[1].Message)
}

func TestRecordService_ListRecords_Empty(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()

	fx.recordRepo.EXPECT().List(ctx).Return(nil, nil)

	outputs, err := fx.service.ListRecords(ctx)

	require.NoError(t, err)
	assert.Empty(t, outputs)
	assert.NotNil(t, outputs)
}

func TestRecordService_ListRecords_StoreFailure(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()

	fx.recordRepo.EXPECT().
		List(ctx).
		Return(nil, domainerrors.NewStoreExecuteError(errors.New("connection reset"), "list records"))

	outputs, err := fx.service.ListRecords(ctx)

	assert.Nil(t, outputs)
	assert.Error(t, err)
}
