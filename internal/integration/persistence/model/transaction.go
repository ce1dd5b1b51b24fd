// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sideincome-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	SourceID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type        string           `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Date        time.Time        `gorm:"type:date;not null;index"`
	Description string           `gorm:"type:varchar(255);not null"`
	IsRecurring bool             `gorm:"not null;default:false"`
	Hours       *decimal.Decimal `gorm:"type:decimal(10,2)"` // NULL means hours were not tracked
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Source *IncomeSourceModel `gorm:"foreignKey:SourceID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		SourceID:    m.SourceID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		IsRecurring: m.IsRecurring,
		Hours:       m.Hours,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		SourceID:    transaction.SourceID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Date:        transaction.Date,
		Description: transaction.Description,
		IsRecurring: transaction.IsRecurring,
		Hours:       transaction.Hours,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
