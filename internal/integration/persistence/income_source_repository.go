// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
	"github.com/sideincome-tracker/backend/internal/integration/persistence/model"
)

// incomeSourceRepository implements the adapter.IncomeSourceRepository interface.
type incomeSourceRepository struct {
	db *gorm.DB
}

// NewIncomeSourceRepository creates a new income source repository instance.
func NewIncomeSourceRepository(db *gorm.DB) adapter.IncomeSourceRepository {
	return &incomeSourceRepository{
		db: db,
	}
}

// Create creates a new income source in the database.
func (r *incomeSourceRepository) Create(ctx context.Context, source *entity.IncomeSource) error {
	sourceModel := model.IncomeSourceFromEntity(source)
	result := r.db.WithContext(ctx).Create(sourceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an income source by its ID.
func (r *incomeSourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeSource, error) {
	var sourceModel model.IncomeSourceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&sourceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSourceNotFound
		}
		return nil, result.Error
	}
	return sourceModel.ToEntity(), nil
}

// FindAll retrieves all income sources ordered by creation date descending.
func (r *incomeSourceRepository) FindAll(ctx context.Context) ([]*entity.IncomeSource, error) {
	var sourceModels []model.IncomeSourceModel
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&sourceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sources := make([]*entity.IncomeSource, len(sourceModels))
	for i, sm := range sourceModels {
		sources[i] = sm.ToEntity()
	}
	return sources, nil
}

// Update updates an existing income source in the database.
func (r *incomeSourceRepository) Update(ctx context.Context, source *entity.IncomeSource) error {
	sourceModel := model.IncomeSourceFromEntity(source)
	result := r.db.WithContext(ctx).Save(sourceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an income source and, through the cascading foreign key, its
// transactions.
func (r *incomeSourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncomeSourceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
