package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Stock       int             `json:"stock" validate:"min=0"`
	Weight      decimal.Decimal `json:"weight"`
	ImageURL    string          `json:"image_url"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Weight      *decimal.Decimal `json:"weight"`
	ImageURL    *string          `json:"image_url"`
	Status      *string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Stock       int             `json:"stock"`
	Weight      decimal.Decimal `json:"weight"`
	ImageURL    string          `json:"image_url,omitempty"`
	WarehouseID string          `json:"warehouse_id"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
