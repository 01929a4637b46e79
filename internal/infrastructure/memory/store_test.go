package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/memory"
)

func seed() *memory.Store {
	return memory.NewStoreFromSnapshot(&entity.Snapshot{Products: []entity.Product{
		{ID: "p1", Name: "Pantalla", CostPrice: decimal.NewFromInt(30), SalePrice: decimal.NewFromInt(50), StockQty: 5, MinStockAlert: 2},
	}})
}

func TestStore_ApplyVenta(t *testing.T) {
	ctx := context.Background()
	st := seed()

	err := st.Apply(ctx,
		ledger.CreateSale{Sale: entity.Sale{ID: "s1", GrandTotal: decimal.NewFromInt(100)}},
		ledger.UpdateProductStock{ProductID: "p1", Delta: -2},
	)
	require.NoError(t, err)

	snap, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Sales, 1)
	assert.Equal(t, 3, snap.Products[0].StockQty)
}

func TestStore_FallaParcialSinRollback(t *testing.T) {
	ctx := context.Background()
	st := seed()

	err := st.Apply(ctx,
		ledger.CreateSale{Sale: entity.Sale{ID: "s1"}},
		ledger.UpdateProductStock{ProductID: "borrado", Delta: -1},
		ledger.UpdateProductStock{ProductID: "p1", Delta: -1},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "intent 2/3")

	snap, _ := st.Load(ctx)
	assert.Len(t, snap.Sales, 1, "la venta ya aplicada no se revierte")
	assert.Equal(t, 5, snap.Products[0].StockQty, "los intents posteriores no se aplican")
}

func TestStore_ProductosYReparaciones(t *testing.T) {
	ctx := context.Background()
	st := seed()

	require.NoError(t, st.Apply(ctx, ledger.CreateProduct{Product: entity.Product{ID: "p2", Name: "Funda"}}))
	assert.True(t, errors.Is(st.Apply(ctx, ledger.CreateProduct{Product: entity.Product{ID: "p2"}}), domain.ErrDuplicate))

	require.NoError(t, st.Apply(ctx, ledger.UpdateProduct{Product: entity.Product{ID: "p1", Name: "Pantalla OLED", StockQty: 99}}))
	require.NoError(t, st.Apply(ctx, ledger.UpdateProductCost{ProductID: "p1", CostPrice: decimal.NewFromInt(33)}))
	require.NoError(t, st.Apply(ctx, ledger.DeleteProduct{ProductID: "p2"}))

	require.NoError(t, st.Apply(ctx, ledger.UpsertRepairTicket{Ticket: entity.RepairTicket{ID: "r1", Status: entity.RepairReceived}}))
	require.NoError(t, st.Apply(ctx, ledger.UpsertRepairTicket{Ticket: entity.RepairTicket{ID: "r1", Status: entity.RepairCompleted}}))

	snap, _ := st.Load(ctx)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Pantalla OLED", snap.Products[0].Name)
	assert.Equal(t, 5, snap.Products[0].StockQty, "UpdateProduct no toca el stock")
	assert.True(t, snap.Products[0].CostPrice.Equal(decimal.NewFromInt(33)))
	require.Len(t, snap.Repairs, 1)
	assert.Equal(t, entity.RepairCompleted, snap.Repairs[0].Status)
}

func TestStore_WatchNotifica(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	st := seed()

	changed := make(chan struct{}, 4)
	done := make(chan struct{})
	go func() {
		_ = st.Watch(ctx, func() { changed <- struct{}{} })
		close(done)
	}()

	// esperar a que el suscriptor quede registrado
	require.Eventually(t, func() bool {
		_ = st.Apply(ctx, ledger.CreateExpense{Expense: entity.Expense{ID: "e", Category: entity.ExpenseOther}})
		select {
		case <-changed:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch no terminó al cancelar el contexto")
	}
}
