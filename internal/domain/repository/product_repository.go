package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error
	// AdjustStock suma delta a la existencia (negativo en ventas). Sin piso en cero.
	AdjustStock(ctx context.Context, productID string, delta int) error
	Delete(ctx context.Context, id string) error
}
