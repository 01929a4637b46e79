package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo (accesorio, repuesto, equipo).
// StockQty es la existencia única de la tienda; se modifica solo vía intents aplicados por el store.
type Product struct {
	ID            string
	Name          string
	Barcode       string // opcional, no garantizado único
	SKU           string
	Category      string
	Brand         string
	CostPrice     decimal.Decimal // precio de compra (costo actual de catálogo)
	SalePrice     decimal.Decimal // precio de venta sugerido
	StockQty      int
	MinStockAlert int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
