package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash = "Cash"
	PaymentCard = "Card"
)

// SaleItem línea de una venta o repuesto usado en una reparación.
// Name y CostPrice son copias desnormalizadas tomadas al momento de la venta.
type SaleItem struct {
	ProductID string
	Name      string
	Qty       int
	Price     decimal.Decimal  // precio unitario (puede modificarse en caja)
	CostPrice *decimal.Decimal // nil si el costo histórico nunca se capturó
	Discount  decimal.Decimal
	Total     decimal.Decimal // siempre Qty * Price
}

// Sale cabecera inmutable de una venta confirmada.
type Sale struct {
	ID            string
	InvoiceNo     string
	CustomerName  string
	CustomerPhone string
	Items         []SaleItem
	SubTotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	Tax           decimal.Decimal
	GrandTotal    decimal.Decimal // SubTotal - TotalDiscount + Tax
	PaymentMethod string          // Cash | Card
	CreatedAt     time.Time
	UserID        string
}

// ValidPaymentMethod indica si m es un método de pago soportado.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard
}
