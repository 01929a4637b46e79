package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewProductIDPrefix prefijo de los IDs temporales de productos que aún no existen en el catálogo.
const NewProductIDPrefix = "NEW-"

// PurchaseItem línea de una factura de proveedor.
// IsNew indica que el producto se crea en el catálogo al confirmar la compra.
type PurchaseItem struct {
	ProductID string
	IsNew     bool
	Name      string
	Barcode   string
	Qty       int
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
	Total     decimal.Decimal // Qty * CostPrice
}

// Purchase factura de compra a proveedor.
type Purchase struct {
	ID         string
	InvoiceNo  string
	Supplier   string
	Phone      string
	Items      []PurchaseItem
	GrandTotal decimal.Decimal
	CreatedAt  time.Time
	UserID     string
}
