package products

import (
	"errors"
	"net/http"
	"strconv"

	"product-api/internal/api"
	"product-api/internal/database"
	"product-api/internal/middleware"
	"product-api/internal/model"
	"product-api/internal/policy"
	"product-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listProducts   = store.ListProducts
	getProductByID = store.GetProductByID
	createProduct  = store.CreateProduct
	updateProduct  = store.UpdateProduct
	deleteProduct  = store.DeleteProduct
)

// loadProduct 解析路徑 id 並取得商品；失敗時已寫入回應
func loadProduct(c echo.Context, db database.DB) (*model.Product, bool, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return nil, false, c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
	}
	p, err := getProductByID(c.Request().Context(), db, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
	}
	if err != nil {
		return nil, false, c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
	}
	return p, true, nil
}

// ListProductsHandler 列出所有商品
// @Summary     List products
// @Tags        products
// @Produce     json
// @Success     200 {object} api.ProductListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := listProducts(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := api.ProductListResponse{Products: make([]api.ProductResponse, 0, len(items))}
		for i := range items {
			resp.Products = append(resp.Products, api.NewProductResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetProductHandler 取得單一商品
// @Summary     Get a product by ID
// @Tags        products
// @Produce     json
// @Param       id  path     int true "商品 ID"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok, err := loadProduct(c, db)
		if !ok {
			return err
		}
		return c.JSON(http.StatusOK, api.NewProductResponse(p))
	}
}

// CreateProductHandler 建立商品，呼叫者即為擁有者
// @Summary     Create a product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateProductRequest true "商品資料"
// @Success     201  {object} api.ProductResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products [post]
func CreateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := middleware.CallerFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		p, err := createProduct(c.Request().Context(), db, &model.Product{
			UserID:      caller.ID,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Tags:        req.Tags,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, api.NewProductResponse(p))
	}
}

// UpdateProductHandler 更新商品 (僅限擁有者)，未提供的欄位保留原值
// @Summary     Update a product by ID
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id   path     int                      true "商品 ID"
// @Param       body body     api.UpdateProductRequest true "更新內容"
// @Success     200  {object} api.ProductResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products/{id} [put]
func UpdateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := strconv.Atoi(c.Param("id")); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}
		var req api.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		p, ok, err := loadProduct(c, db)
		if !ok {
			return err
		}
		caller, _ := middleware.CallerFrom(c)
		if err := policy.CanUpdateProduct(caller, *p); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}

		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Tags != nil {
			p.Tags = *req.Tags
		}

		updated, err := updateProduct(c.Request().Context(), db, p)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewProductResponse(updated))
	}
}

// DeleteProductHandler 刪除商品 (僅限擁有者)
// @Summary     Delete a product by ID
// @Tags        products
// @Param       id  path int true "商品 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products/{id} [delete]
func DeleteProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok, err := loadProduct(c, db)
		if !ok {
			return err
		}
		caller, _ := middleware.CallerFrom(c)
		if err := policy.CanDeleteProduct(caller, *p); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}

		err = deleteProduct(c.Request().Context(), db, p.ID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
