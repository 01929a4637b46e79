package repository

import (
	"context"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// SaleRepository ventas confirmadas (solo alta).
type SaleRepository interface {
	List(ctx context.Context) ([]entity.Sale, error)
	Create(ctx context.Context, sale *entity.Sale) error
}

// PurchaseRepository compras a proveedor (solo alta).
type PurchaseRepository interface {
	List(ctx context.Context) ([]entity.Purchase, error)
	Create(ctx context.Context, purchase *entity.Purchase) error
}

// ExpenseRepository gastos operativos (solo alta).
type ExpenseRepository interface {
	List(ctx context.Context) ([]entity.Expense, error)
	Create(ctx context.Context, expense *entity.Expense) error
}

// RepairRepository tickets de servicio técnico; nunca se eliminan.
type RepairRepository interface {
	List(ctx context.Context) ([]entity.RepairTicket, error)
	Upsert(ctx context.Context, ticket *entity.RepairTicket) error
}
