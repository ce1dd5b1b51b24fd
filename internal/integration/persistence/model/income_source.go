// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/sideincome-tracker/backend/internal/domain/entity"
)

// IncomeSourceModel represents the income_sources table in the database.
type IncomeSourceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	// Deleting a source removes its transactions through the cascade.
	Transactions []TransactionModel `gorm:"foreignKey:SourceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the IncomeSourceModel.
func (IncomeSourceModel) TableName() string {
	return "income_sources"
}

// ToEntity converts an IncomeSourceModel to a domain IncomeSource entity.
func (m *IncomeSourceModel) ToEntity() *entity.IncomeSource {
	return &entity.IncomeSource{
		ID:          m.ID,
		Name:        m.Name,
		Type:        entity.IncomeSourceType(m.Type),
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// IncomeSourceFromEntity creates an IncomeSourceModel from a domain IncomeSource entity.
func IncomeSourceFromEntity(source *entity.IncomeSource) *IncomeSourceModel {
	return &IncomeSourceModel{
		ID:          source.ID,
		Name:        source.Name,
		Type:        string(source.Type),
		Description: source.Description,
		IsActive:    source.IsActive,
		CreatedAt:   source.CreatedAt,
		UpdatedAt:   source.UpdatedAt,
	}
}
