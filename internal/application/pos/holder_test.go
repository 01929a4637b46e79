package pos_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

func TestSnapshotHolder_WatchRefresca(t *testing.T) {
	store := memory.NewStoreFromSnapshot(&entity.Snapshot{Products: []entity.Product{product("p1", 5, "1", "2")}})
	holder := pos.NewSnapshotHolder(store, logger.Nop())
	assert.Empty(t, holder.Current().Products, "vacío hasta el primer Refresh")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, holder.Refresh(ctx))
	first := holder.Current()
	assert.False(t, first.TakenAt.IsZero())

	done := make(chan error, 1)
	go func() { done <- holder.Watch(ctx, store) }()

	// Watch se suscribe de forma asíncrona: se reintenta el cambio hasta observarlo.
	assert.Eventually(t, func() bool {
		_ = store.Apply(ctx, ledger.UpdateProductStock{ProductID: "p1", Delta: -1})
		p, _ := holder.Current().ProductByID("p1")
		return p.StockQty < 5
	}, 2*time.Second, 20*time.Millisecond)

	assert.Equal(t, 5, first.Products[0].StockQty, "el snapshot anterior no se modifica")

	cancel()
	assert.NoError(t, <-done)
}
