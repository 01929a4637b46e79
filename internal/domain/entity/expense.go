package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto operativo (conjunto cerrado).
const (
	ExpenseRent      = "rent"
	ExpenseUtilities = "utilities"
	ExpenseSalaries  = "salaries"
	ExpenseMarketing = "marketing"
	ExpenseOther     = "other"
)

// ExpenseCategories orden fijo usado en reportes.
var ExpenseCategories = []string{ExpenseRent, ExpenseSalaries, ExpenseUtilities, ExpenseMarketing, ExpenseOther}

// Expense gasto operativo (solo se agregan, nunca se editan).
type Expense struct {
	ID        string
	Category  string
	Amount    decimal.Decimal
	Notes     string
	CreatedAt time.Time
	AddedBy   string
}

// ValidExpenseCategory indica si c pertenece al conjunto cerrado.
func ValidExpenseCategory(c string) bool {
	for _, v := range ExpenseCategories {
		if v == c {
			return true
		}
	}
	return false
}
