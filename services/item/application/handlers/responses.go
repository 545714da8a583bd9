package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/storefront/services/item/domain/models"
)

// ItemResponse is the JSON shape returned for a full item record.
type ItemResponse struct {
	ID        uuid.UUID  `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string     `json:"name"       example:"Laptop"`
	Price     float64    `json:"price"      example:"6000"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name.String(),
		Price:     item.Price.Float64(),
		CreatedBy: item.CreatedBy,
		CreatedAt: item.CreatedAt,
		UpdatedBy: item.UpdatedBy,
		UpdatedAt: item.UpdatedAt,
	}
}
