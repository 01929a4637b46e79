package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo gastos operativos.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el repositorio. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// List devuelve todos los gastos en orden cronológico.
func (r *ExpenseRepo) List(ctx context.Context) ([]entity.Expense, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, category, amount, notes, created_at, added_by
		FROM expenses ORDER BY created_at NULLS FIRST, id`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Expense, 0)
	for rows.Next() {
		var e entity.Expense
		var created *time.Time
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &e.Notes, &created, &e.AddedBy); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.CreatedAt = fromNullTime(created)
		list = append(list, e)
	}
	return list, rows.Err()
}

// Create inserta el gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO expenses (id, category, amount, notes, created_at, added_by)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Category, e.Amount, e.Notes, nullTime(e.CreatedAt), e.AddedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}
