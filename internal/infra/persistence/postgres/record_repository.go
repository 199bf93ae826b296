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

// recordRepository implements the repository.RecordRepository interface using GORM.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create persists a new record.
func (repo *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	recordM := fromRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMessageEmpty.WrapMessage("missing record message")
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// List returns all records, oldest first.
func (repo *recordRepository) List(ctx context.Context) ([]*entity.Record, error) {
	var recordMs []model.RecordModel

	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&recordMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	records := make([]*entity.Record, 0, len(recordMs))
	for i := range recordMs {
		records = append(records, toRecordDomain(&recordMs[i]))
	}

	return records, nil
}

func fromRecordDomain(record *entity.Record) *model.RecordModel {
	return &model.RecordModel{
		ID:        record.ID,
		Message:   record.Message,
		CreatedAt: record.CreatedAt,
	}
}

func toRecordDomain(recordM *model.RecordModel) *entity.Record {
	return &entity.Record{
		ID:        recordM.ID,
		Message:   recordM.Message,
		CreatedAt: recordM.CreatedAt,
	}
}
