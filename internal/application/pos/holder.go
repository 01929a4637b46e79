// Package pos contiene los casos de uso del punto de venta y taller: reportes, caja,
// compras, reparaciones, gastos y catálogo. Todos leen del último snapshot y escriben
// únicamente a través de intents.
package pos

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

// SnapshotHolder conserva el último snapshot cargado. Se reemplaza completo en cada
// Refresh; los lectores nunca ven un snapshot a medio cargar.
type SnapshotHolder struct {
	repo repository.SnapshotRepository
	log  *logger.Logger

	mu   sync.RWMutex
	snap *entity.Snapshot
}

// NewSnapshotHolder construye el holder con un snapshot vacío.
func NewSnapshotHolder(repo repository.SnapshotRepository, log *logger.Logger) *SnapshotHolder {
	if log == nil {
		log = logger.Nop()
	}
	return &SnapshotHolder{repo: repo, log: log.Component("snapshot"), snap: &entity.Snapshot{}}
}

// Current devuelve el snapshot vigente. No debe modificarse.
func (h *SnapshotHolder) Current() *entity.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// Refresh recarga el snapshot desde el store.
func (h *SnapshotHolder) Refresh(ctx context.Context) error {
	snap, err := h.repo.Load(ctx)
	if err != nil {
		return err
	}
	if snap.TakenAt.IsZero() {
		snap.TakenAt = time.Now()
	}
	h.mu.Lock()
	h.snap = snap
	h.mu.Unlock()
	h.log.Debug().
		Int("products", len(snap.Products)).
		Int("sales", len(snap.Sales)).
		Int("repairs", len(snap.Repairs)).
		Msg("snapshot actualizado")
	return nil
}

// Watch refresca el snapshot cada vez que el feed informa un cambio. Bloquea hasta que ctx se cancela.
func (h *SnapshotHolder) Watch(ctx context.Context, feed repository.ChangeFeed) error {
	return feed.Watch(ctx, func() {
		if err := h.Refresh(ctx); err != nil && ctx.Err() == nil {
			h.log.Warn().Err(err).Msg("no se pudo refrescar el snapshot")
		}
	})
}
