// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sideincome-tracker/backend/internal/domain/entity"
)

// IncomeSourceRepository defines the interface for income source persistence operations.
type IncomeSourceRepository interface {
	// Create creates a new income source in the database.
	Create(ctx context.Context, source *entity.IncomeSource) error

	// FindByID retrieves an income source by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeSource, error)

	// FindAll retrieves all income sources ordered by creation date descending.
	FindAll(ctx context.Context) ([]*entity.IncomeSource, error)

	// Update updates an existing income source in the database.
	Update(ctx context.Context, source *entity.IncomeSource) error

	// Delete removes an income source; its transactions are removed by the
	// cascading foreign key.
	Delete(ctx context.Context, id uuid.UUID) error
}
