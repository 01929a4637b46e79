package pos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

func TestExpense_Crear(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &entity.Snapshot{})
	uc := pos.NewExpenseUseCase(f.core)

	e, err := uc.Create(ctx, admin, dto.ExpenseRequest{Category: "Rent", Amount: dec("300"), Notes: " marzo "})
	require.NoError(t, err)
	assert.Equal(t, entity.ExpenseRent, e.Category)
	assert.Equal(t, "marzo", e.Notes)
	assert.Equal(t, "Dueño", e.AddedBy)

	list, err := uc.List("today")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e.ID, list[0].ID)
}

func TestExpense_Validaciones(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &entity.Snapshot{})
	uc := pos.NewExpenseUseCase(f.core)

	_, err := uc.Create(ctx, admin, dto.ExpenseRequest{Category: "viajes", Amount: dec("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, admin, dto.ExpenseRequest{Category: "other", Amount: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, f.core.Snapshots.Current().Expenses)
}
