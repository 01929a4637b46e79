package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// ImportSnapshot inserta todo el histórico en una sola transacción: si una fila falla
// (por ejemplo un ID ya existente) no queda nada a medias.
func ImportSnapshot(ctx context.Context, tx *TxRunner, snap *entity.Snapshot) error {
	return tx.Run(ctx, func(q Querier) error {
		products := NewProductRepository(q)
		for i := range snap.Products {
			if err := products.Create(ctx, &snap.Products[i]); err != nil {
				return fmt.Errorf("producto %s: %w", snap.Products[i].ID, err)
			}
		}
		sales := NewSaleRepository(q)
		for i := range snap.Sales {
			if err := sales.Create(ctx, &snap.Sales[i]); err != nil {
				return fmt.Errorf("venta %s: %w", snap.Sales[i].ID, err)
			}
		}
		purchases := NewPurchaseRepository(q)
		for i := range snap.Purchases {
			if err := purchases.Create(ctx, &snap.Purchases[i]); err != nil {
				return fmt.Errorf("compra %s: %w", snap.Purchases[i].ID, err)
			}
		}
		expenses := NewExpenseRepository(q)
		for i := range snap.Expenses {
			if err := expenses.Create(ctx, &snap.Expenses[i]); err != nil {
				return fmt.Errorf("gasto %s: %w", snap.Expenses[i].ID, err)
			}
		}
		repairs := NewRepairRepository(q)
		for i := range snap.Repairs {
			if err := repairs.Upsert(ctx, &snap.Repairs[i]); err != nil {
				return fmt.Errorf("reparación %s: %w", snap.Repairs[i].ID, err)
			}
		}
		return nil
	})
}
