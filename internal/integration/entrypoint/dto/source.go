// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/sideincome-tracker/backend/internal/domain/entity"
)

// CreateSourceRequest represents the request body for income source creation.
type CreateSourceRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateSourceRequest represents the request body for a partial income source
// update. Absent fields keep their current value.
type UpdateSourceRequest struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// SourceResponse represents a single income source in API responses.
type SourceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SourceListResponse represents the response for listing income sources.
type SourceListResponse struct {
	Sources []SourceResponse `json:"sources"`
}

// ToSourceResponse converts a domain IncomeSource entity to a SourceResponse DTO.
func ToSourceResponse(source *entity.IncomeSource) SourceResponse {
	return SourceResponse{
		ID:          source.ID.String(),
		Name:        source.Name,
		Type:        string(source.Type),
		Description: source.Description,
		IsActive:    source.IsActive,
		CreatedAt:   source.CreatedAt,
		UpdatedAt:   source.UpdatedAt,
	}
}

// ToSourceListResponse converts income sources to a SourceListResponse DTO.
func ToSourceListResponse(sources []*entity.IncomeSource) SourceListResponse {
	responses := make([]SourceResponse, len(sources))
	for i, source := range sources {
		responses[i] = ToSourceResponse(source)
	}
	return SourceListResponse{Sources: responses}
}
