package pos_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	zone   = time.FixedZone("COT", -5*3600)
	now    = time.Date(2026, time.March, 10, 15, 0, 0, 0, zone)
	admin  = entity.User{ID: "admin", Name: "Dueño", Role: entity.RoleAdmin}
	cajero = entity.User{ID: "cashier", Name: "Caja 1", Role: entity.RoleCashier}
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

type fixture struct {
	store *memory.Store
	carts *memory.CartStore
	core  pos.Core
}

func newFixture(t *testing.T, snap *entity.Snapshot) *fixture {
	t.Helper()
	store := memory.NewStoreFromSnapshot(snap)
	holder := pos.NewSnapshotHolder(store, logger.Nop())
	require.NoError(t, holder.Refresh(context.Background()))
	n := 0
	return &fixture{
		store: store,
		carts: memory.NewCartStore(),
		core: pos.Core{
			Snapshots: holder,
			Applier:   store,
			Log:       logger.Nop(),
			Clock:     func() time.Time { return now },
			IDs: func() string {
				n++
				return fmt.Sprintf("gen%04d", n)
			},
			Region: "CO",
		},
	}
}

func product(id string, stock int, cost, sale string) entity.Product {
	return entity.Product{
		ID:            id,
		Name:          "Producto " + id,
		Barcode:       "77" + id,
		Brand:         "Marca " + id,
		CostPrice:     dec(cost),
		SalePrice:     dec(sale),
		StockQty:      stock,
		MinStockAlert: 2,
	}
}

func (f *fixture) product(t *testing.T, id string) entity.Product {
	t.Helper()
	p, ok := f.core.Snapshots.Current().ProductByID(id)
	require.True(t, ok, "producto %s", id)
	return p
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}
