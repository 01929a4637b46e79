package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRequest registro de un gasto operativo.
type ExpenseRequest struct {
	Category string          `json:"category" validate:"required,max=32"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes" validate:"max=500"`
}

// ExpenseResponse gasto registrado.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
	AddedBy   string          `json:"added_by"`
}
