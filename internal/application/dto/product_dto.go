package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest alta o edición de un producto. El stock inicial solo se toma en altas;
// en ediciones el stock cambia únicamente por ventas, compras y reparaciones.
type ProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Barcode       string          `json:"barcode" validate:"max=64"`
	SKU           string          `json:"sku" validate:"max=64"`
	Category      string          `json:"category" validate:"max=100"`
	Brand         string          `json:"brand" validate:"max=100"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQty      int             `json:"stock_qty" validate:"min=0"`
	MinStockAlert *int            `json:"min_stock_alert" validate:"omitempty,min=0"`
}

// ProductFilter búsqueda por nombre, código de barras o marca.
type ProductFilter struct {
	Query string `query:"q"`
	PageRequest
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQty      int             `json:"stock_qty"`
	MinStockAlert int             `json:"min_stock_alert"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
