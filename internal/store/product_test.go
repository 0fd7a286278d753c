package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"product-api/internal/database"
	"product-api/internal/model"
)

func TestListProducts(t *testing.T) {
	rows := &fakeRows{rows: []fakeRow{
		productRow(model.Product{ID: 1, UserID: 2, Name: "lamp", Price: 9.5, Tags: []string{"home"}}),
	}}
	db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil }}
	products, err := ListProducts(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, []string{"home"}, products[0].Tags)
	require.Equal(t, 2, products[0].UserID)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
	_, err = ListProducts(context.Background(), db)
	require.Error(t, err)
}

func TestGetProductByID(t *testing.T) {
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
		if args[0] == 1 {
			return productRow(model.Product{ID: 1, UserID: 5, Name: "lamp"})
		}
		return fakeRow{err: pgx.ErrNoRows}
	}}
	p, err := GetProductByID(context.Background(), db, 1)
	require.NoError(t, err)
	require.Equal(t, 5, p.UserID)

	_, err = GetProductByID(context.Background(), db, 2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProduct(t *testing.T) {
	now := time.Now().UTC()
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		require.Contains(t, sql, "INSERT INTO products")
		require.Equal(t, 5, args[0])
		require.Equal(t, []string{}, args[4])
		return fakeRow{values: []any{11, now, now}}
	}}
	p, err := CreateProduct(context.Background(), db, &model.Product{UserID: 5, Name: "lamp", Description: "d", Price: 1})
	require.NoError(t, err)
	require.Equal(t, 11, p.ID)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return fakeRow{err: errors.New("fk")} }
	_, err = CreateProduct(context.Background(), db, &model.Product{UserID: 5})
	require.ErrorContains(t, err, "fk")
}

func TestUpdateProductKeepsOwner(t *testing.T) {
	now := time.Now().UTC()
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		require.NotContains(t, sql, "user_id =")
		require.Equal(t, []any{"n", "d", 2.5, []string{"x"}, 3}, args)
		return fakeRow{values: []any{8, now}}
	}}
	p, err := UpdateProduct(context.Background(), db, &model.Product{ID: 3, UserID: 99, Name: "n", Description: "d", Price: 2.5, Tags: []string{"x"}})
	require.NoError(t, err)
	require.Equal(t, 8, p.UserID)
	require.Equal(t, now, p.UpdatedAt)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return fakeRow{err: pgx.ErrNoRows} }
	_, err = UpdateProduct(context.Background(), db, &model.Product{ID: 3})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("DELETE 1"), nil
	}}
	require.NoError(t, DeleteProduct(context.Background(), db, 1))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("DELETE 0"), nil
	}
	require.ErrorIs(t, DeleteProduct(context.Background(), db, 1), ErrNotFound)

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("exec")
	}
	require.Error(t, DeleteProduct(context.Background(), db, 1))
}
