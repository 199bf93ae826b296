package impl

import (
	"context"
	"log/slog"

	deliverycontext "pinboard/internal/delivery/context"
	"pinboard/internal/domain/entity"
	domainerrors "pinboard/internal/domain/errors"
	"pinboard/internal/domain/repository"
	"pinboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recordService implements the RecordUsecase interface.
type recordService struct {
	recordRepo repository.RecordRepository
	logger     *slog.Logger
}

// RecordServiceParams holds dependencies for recordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	RecordRepo repository.RecordRepository
	Logger     *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		recordRepo: params.RecordRepo,
		logger:     params.Logger,
	}
}

func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRecord stores a new text record.
func (srv *recordService) CreateRecord(ctx context.Context, input *usecase.CreateRecordInput) (*usecase.RecordOutput, error) {
	if input.Message == "" {
		return nil, domainerrors.ErrMessageEmpty
	}

	record := &entity.Record{Message: input.Message}

	if err := srv.recordRepo.Create(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to create record", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create record")
	}

	srv.log(ctx).Debug("Record created", slog.Any("recordID", record.ID))

	return toRecordOutput(record), nil
}

// ListRecords returns every stored record, oldest first.
func (srv *recordService) ListRecords(ctx context.Context) ([]*usecase.RecordOutput, error) {
	records, err := srv.recordRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list records", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list records")
	}

	outputs := make([]*usecase.RecordOutput, 0, len(records))
	for _, record := range records {
		outputs = append(outputs, toRecordOutput(record))
	}

	return outputs, nil
}

func toRecordOutput(record *entity.Record) *usecase.RecordOutput {
	return &usecase.RecordOutput{
		RecordID: record.ID,
		Message:  record.Message,
	}
}
