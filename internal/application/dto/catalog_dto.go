package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryRequest actualización de categoría.
type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CategoryResponse categoría con sus sub-categorías activas (en detalle).
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	Active        bool                  `json:"active"`
	SubCategories []SubCategoryResponse `json:"sub_categories,omitempty"`
	Products      []ProductResponse     `json:"products,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// CreateSubCategoryRequest alta de sub-categoría.
type CreateSubCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	CategoryID  string `json:"category_id" validate:"required"`
}

// UpdateSubCategoryRequest actualización de sub-categoría. CategoryID vacío
// significa no cambiar de padre.
type UpdateSubCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	CategoryID  string `json:"category_id"`
}

// SubCategoryResponse sub-categoría.
type SubCategoryResponse struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProductRequest alta de producto. El código se normaliza (trim + mayúsculas).
type CreateProductRequest struct {
	Code          string          `json:"code" validate:"required,max=50"`
	Designation   string          `json:"designation" validate:"required,max=200"`
	Stock         int             `json:"stock" validate:"min=0"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ImageURL      string          `json:"image_url"`
	SubCategoryID string          `json:"sub_category_id" validate:"required"`
}

// UpdateProductRequest actualización de producto (el código viaja en la URL).
// SubCategoryID vacío significa no cambiar de sub-categoría.
type UpdateProductRequest struct {
	Designation   string          `json:"designation" validate:"required,max=200"`
	Stock         int             `json:"stock" validate:"min=0"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ImageURL      string          `json:"image_url"`
	SubCategoryID string          `json:"sub_category_id"`
}

// UpdateStockRequest ajuste directo de stock.
type UpdateStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// ProductResponse producto.
type ProductResponse struct {
	Code          string          `json:"code"`
	Designation   string          `json:"designation"`
	Stock         int             `json:"stock"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ImageURL      string          `json:"image_url,omitempty"`
	SubCategoryID string          `json:"sub_category_id"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductImageResponse resultado de subir una imagen de producto.
type ProductImageResponse struct {
	Product ProductResponse `json:"product"`
	URL     string          `json:"url"`
	Width   int             `json:"width,omitempty"`
	Height  int             `json:"height,omitempty"`
	Format  string          `json:"format,omitempty"`
	Bytes   int64           `json:"bytes,omitempty"`
}

// ProductImageInfoResponse estado de la imagen actual de un producto.
type ProductImageInfoResponse struct {
	ProductCode string `json:"product_code"`
	HasImage    bool   `json:"has_image"`
	URL         string `json:"url,omitempty"`
	PublicID    string `json:"public_id,omitempty"`
}
