// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IncomeSourceType represents the kind of income source.
type IncomeSourceType string

const (
	IncomeSourceTypeFreelance IncomeSourceType = "FREELANCE"
	IncomeSourceTypeProject   IncomeSourceType = "PROJECT"
	IncomeSourceTypePassive   IncomeSourceType = "PASSIVE"
	IncomeSourceTypeEtc       IncomeSourceType = "ETC"
)

// IncomeSource represents a named channel of income/expense activity, such as
// a freelance client or a side project. Inactive sources are archived and
// excluded from aggregate reports.
type IncomeSource struct {
	ID          uuid.UUID
	Name        string
	Type        IncomeSourceType
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncomeSource creates a new IncomeSource entity. Sources start active.
func NewIncomeSource(name string, sourceType IncomeSourceType, description string) *IncomeSource {
	now := time.Now().UTC()

	return &IncomeSource{
		ID:          uuid.New(),
		Name:        name,
		Type:        sourceType,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
