package pos

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// ExpenseUseCase gastos operativos: solo alta y consulta.
type ExpenseUseCase struct {
	core Core
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(core Core) *ExpenseUseCase {
	return &ExpenseUseCase{core: core}
}

// List gastos del período, el más reciente primero.
func (uc *ExpenseUseCase) List(period string) ([]dto.ExpenseResponse, error) {
	p, err := ledger.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	f := ledger.Filter(uc.core.snapshot(), ledger.WindowFor(p, uc.core.now()))
	expenses := f.Expenses
	sort.SliceStable(expenses, func(i, j int) bool { return expenses[i].CreatedAt.After(expenses[j].CreatedAt) })
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Create registra un gasto de una categoría del conjunto cerrado con monto no negativo.
func (uc *ExpenseUseCase) Create(ctx context.Context, user entity.User, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	category := strings.ToLower(strings.TrimSpace(in.Category))
	if !entity.ValidExpenseCategory(category) {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "categoría de gasto inválida %q", in.Category)
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "el monto no puede ser negativo")
	}
	ids := uc.core.IDs
	if ids == nil {
		ids = ledger.NewID
	}
	e := entity.Expense{
		ID:        ids(),
		Category:  category,
		Amount:    in.Amount,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: uc.core.now(),
		AddedBy:   user.Name,
	}
	if err := uc.core.apply(ctx, "expense.create", []ledger.Intent{ledger.CreateExpense{Expense: e}}); err != nil {
		return nil, err
	}
	out := toExpenseResponse(e)
	return &out, nil
}
