package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotLoader)(nil)

// SnapshotLoader lee las cinco colecciones dentro de una misma transacción de solo lectura.
type SnapshotLoader struct {
	tx  *TxRunner
	now func() time.Time
}

// NewSnapshotLoader construye el cargador sobre el runner de transacciones.
func NewSnapshotLoader(tx *TxRunner) *SnapshotLoader {
	return &SnapshotLoader{tx: tx, now: time.Now}
}

// Load devuelve un snapshot consistente (REPEATABLE READ).
func (l *SnapshotLoader) Load(ctx context.Context) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{}
	err := l.tx.RunReadOnly(ctx, func(q Querier) error {
		var err error
		if snap.Products, err = NewProductRepository(q).List(ctx); err != nil {
			return err
		}
		if snap.Sales, err = NewSaleRepository(q).List(ctx); err != nil {
			return err
		}
		if snap.Repairs, err = NewRepairRepository(q).List(ctx); err != nil {
			return err
		}
		if snap.Expenses, err = NewExpenseRepository(q).List(ctx); err != nil {
			return err
		}
		if snap.Purchases, err = NewPurchaseRepository(q).List(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	snap.TakenAt = l.now()
	return snap, nil
}
