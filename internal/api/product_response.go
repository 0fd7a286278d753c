package api

import (
	"time"

	"product-api/internal/model"
)

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID          int       `json:"_id" example:"7"`
	UserID      int       `json:"user_id" example:"1"`
	Name        string    `json:"product_name" example:"Desk Lamp"`
	Description string    `json:"product_description" example:"LED lamp with dimmer"`
	Price       float64   `json:"product_price" example:"29.9"`
	Tags        []string  `json:"product_tag" example:"home,lighting"`
	CreatedAt   time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}

// swagger:model api.ProductListResponse
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

func NewProductResponse(p *model.Product) ProductResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Tags:        tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
