package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

var _ repository.IntentApplier = (*IntentApplier)(nil)

// IntentApplier traduce cada intent del motor a una sentencia sobre el pool.
// Cada intent se confirma por separado: no hay transacción que los agrupe.
type IntentApplier struct {
	products  *ProductRepo
	sales     *SaleRepo
	purchases *PurchaseRepo
	expenses  *ExpenseRepo
	repairs   *RepairRepo
	log       *logger.Logger
}

// NewIntentApplier construye el aplicador. Pasar el pool (Querier).
func NewIntentApplier(q Querier, log *logger.Logger) *IntentApplier {
	if log == nil {
		log = logger.Nop()
	}
	return &IntentApplier{
		products:  NewProductRepository(q),
		sales:     NewSaleRepository(q),
		purchases: NewPurchaseRepository(q),
		expenses:  NewExpenseRepository(q),
		repairs:   NewRepairRepository(q),
		log:       log,
	}
}

// Apply aplica los intents en orden y se detiene en el primer error.
func (a *IntentApplier) Apply(ctx context.Context, intents ...ledger.Intent) error {
	for i, in := range intents {
		if err := a.apply(ctx, in); err != nil {
			return fmt.Errorf("intent %d/%d (%s): %w", i+1, len(intents), in.Kind(), err)
		}
		a.log.Debug().Str("kind", in.Kind()).Msg("intent aplicado")
	}
	return nil
}

func (a *IntentApplier) apply(ctx context.Context, in ledger.Intent) error {
	switch v := in.(type) {
	case ledger.CreateSale:
		return a.sales.Create(ctx, &v.Sale)
	case ledger.CreatePurchase:
		return a.purchases.Create(ctx, &v.Purchase)
	case ledger.UpdateProductStock:
		return a.products.AdjustStock(ctx, v.ProductID, v.Delta)
	case ledger.UpdateProductCost:
		return a.products.UpdateCost(ctx, v.ProductID, v.CostPrice)
	case ledger.CreateProduct:
		return a.products.Create(ctx, &v.Product)
	case ledger.UpdateProduct:
		return a.products.Update(ctx, &v.Product)
	case ledger.DeleteProduct:
		return a.products.Delete(ctx, v.ProductID)
	case ledger.CreateExpense:
		return a.expenses.Create(ctx, &v.Expense)
	case ledger.UpsertRepairTicket:
		return a.repairs.Upsert(ctx, &v.Ticket)
	}
	return fmt.Errorf("intent no soportado: %T", in)
}
