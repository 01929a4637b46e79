package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartLineRequest agrega un producto existente por ID o por código de barras.
type AddCartLineRequest struct {
	ProductID string `json:"product_id" validate:"required_without=Barcode"`
	Barcode   string `json:"barcode" validate:"required_without=ProductID"`
}

// NewProductLineRequest línea de compra para un producto que aún no está en el catálogo.
type NewProductLineRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Barcode   string          `json:"barcode" validate:"max=64"`
	Qty       int             `json:"qty" validate:"min=1"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// UpdateCartLineRequest cambios parciales sobre una línea.
type UpdateCartLineRequest struct {
	Qty       *int             `json:"qty" validate:"omitempty,min=1"`
	Price     *decimal.Decimal `json:"price"`
	SalePrice *decimal.Decimal `json:"sale_price"`
}

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Barcode   string          `json:"barcode,omitempty"`
	IsNew     bool            `json:"is_new,omitempty"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Total     decimal.Decimal `json:"total"`
}

// CartResponse carrito en curso del operador.
type CartResponse struct {
	Kind       string             `json:"kind"`
	Lines      []CartLineResponse `json:"lines"`
	SubTotal   decimal.Decimal    `json:"sub_total"`
	GrandTotal decimal.Decimal    `json:"grand_total"`
}

// CheckoutSaleRequest datos de cabecera de la venta.
type CheckoutSaleRequest struct {
	CustomerName  string `json:"customer_name" validate:"max=200"`
	CustomerPhone string `json:"customer_phone" validate:"max=32"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=Cash Card"`
}

// CheckoutPurchaseRequest datos de cabecera de la factura de proveedor.
// Supplier es obligatorio; lo exige la confirmación de la compra (SUPPLIER_REQUIRED).
type CheckoutPurchaseRequest struct {
	Supplier  string `json:"supplier" validate:"max=200"`
	Phone     string `json:"phone" validate:"max=32"`
	InvoiceNo string `json:"invoice_no" validate:"max=64"`
}

// SaleItemResponse línea de una venta o repuesto de reparación.
type SaleItemResponse struct {
	ProductID string           `json:"product_id"`
	Name      string           `json:"name"`
	Qty       int              `json:"qty"`
	Price     decimal.Decimal  `json:"price"`
	CostPrice *decimal.Decimal `json:"cost_price,omitempty"`
	Total     decimal.Decimal  `json:"total"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID            string             `json:"id"`
	InvoiceNo     string             `json:"invoice_no"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []SaleItemResponse `json:"items"`
	SubTotal      decimal.Decimal    `json:"sub_total"`
	TotalDiscount decimal.Decimal    `json:"total_discount"`
	Tax           decimal.Decimal    `json:"tax"`
	GrandTotal    decimal.Decimal    `json:"grand_total"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     *time.Time         `json:"created_at,omitempty"`
	UserID        string             `json:"user_id"`
}

// PurchaseItemResponse línea de compra.
type PurchaseItemResponse struct {
	ProductID string          `json:"product_id"`
	IsNew     bool            `json:"is_new"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Total     decimal.Decimal `json:"total"`
}

// PurchaseResponse compra confirmada.
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	InvoiceNo  string                 `json:"invoice_no"`
	Supplier   string                 `json:"supplier"`
	Phone      string                 `json:"phone"`
	Items      []PurchaseItemResponse `json:"items"`
	GrandTotal decimal.Decimal        `json:"grand_total"`
	CreatedAt  *time.Time             `json:"created_at,omitempty"`
	UserID     string                 `json:"user_id"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
