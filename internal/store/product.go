package store

import (
	"context"
	"fmt"

	"product-api/internal/database"
	"product-api/internal/model"
)

const productColumns = `id, user_id, name, description, price, tags, created_at, updated_at`

func scanProduct(row scanner) (*model.Product, error) {
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Tags,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, productID int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		productID,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", translate(err))
	}
	return p, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	row := db.QueryRow(ctx,
		`INSERT INTO products (user_id, name, description, price, tags)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.UserID,
		p.Name,
		p.Description,
		p.Price,
		p.Tags,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", translate(err))
	}
	return p, nil
}

// UpdateProduct 不寫入 user_id，擁有者於建立後不可變更
func UpdateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	row := db.QueryRow(ctx,
		`UPDATE products
		 SET name = $1, description = $2, price = $3, tags = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING user_id, updated_at`,
		p.Name,
		p.Description,
		p.Price,
		p.Tags,
		p.ID,
	)
	if err := row.Scan(&p.UserID, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpdateProduct: %w", translate(err))
	}
	return p, nil
}

func DeleteProduct(ctx context.Context, db database.DB, productID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProduct: %w", ErrNotFound)
	}
	return nil
}
