// File: internal/model/product.go
package model

import "time"

// Product 的 UserID 於建立時決定，之後不可變更
type Product struct {
	ID          int       `db:"id" json:"_id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"product_name"`
	Description string    `db:"description" json:"product_description"`
	Price       float64   `db:"price" json:"product_price"`
	Tags        []string  `db:"tags" json:"product_tag"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
