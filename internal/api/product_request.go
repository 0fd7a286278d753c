// File: internal/api/product_request.go
package api

// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name        string   `json:"product_name" validate:"required" example:"Desk Lamp"`
	Description string   `json:"product_description" validate:"required" example:"LED lamp with dimmer"`
	Price       float64  `json:"product_price" validate:"required,gt=0" example:"29.9"`
	Tags        []string `json:"product_tag" validate:"required" example:"home,lighting"`
}

// UpdateProductRequest 的 nil 欄位保留原值，擁有者不可透過此請求變更
// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Name        *string   `json:"product_name" validate:"omitempty,min=1" example:"Desk Lamp"`
	Description *string   `json:"product_description" validate:"omitempty,min=1" example:"LED lamp with dimmer"`
	Price       *float64  `json:"product_price" validate:"omitempty,gt=0" example:"24.5"`
	Tags        *[]string `json:"product_tag" example:"home,lighting"`
}
