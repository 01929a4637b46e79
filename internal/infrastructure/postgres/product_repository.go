package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, barcode, sku, category, brand, cost_price, sale_price, stock_qty, min_stock_alert, created_at, updated_at`

// List devuelve el catálogo completo en orden de alta.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at NULLS FIRST, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		var created, updated *time.Time
		if err := rows.Scan(&p.ID, &p.Name, &p.Barcode, &p.SKU, &p.Category, &p.Brand,
			&p.CostPrice, &p.SalePrice, &p.StockQty, &p.MinStockAlert, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.CreatedAt = fromNullTime(created)
		p.UpdatedAt = fromNullTime(updated)
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Name, p.Barcode, p.SKU, p.Category, p.Brand,
		p.CostPrice, p.SalePrice, p.StockQty, p.MinStockAlert, nullTime(p.CreatedAt), nullTime(p.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update actualiza los datos de catálogo. El stock se ajusta solo con AdjustStock.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, barcode = $3, sku = $4, category = $5, brand = $6,
			cost_price = $7, sale_price = $8, min_stock_alert = $9, updated_at = $10
		WHERE id = $1`,
		p.ID, p.Name, p.Barcode, p.SKU, p.Category, p.Brand,
		p.CostPrice, p.SalePrice, p.MinStockAlert, nullTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCost actualiza solo el costo del producto (costo promedio tras una compra).
func (r *ProductRepo) UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET cost_price = $2, updated_at = now() WHERE id = $1`,
		productID, cost,
	)
	if err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock suma delta en una sola sentencia; el último en escribir gana.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID string, delta int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock_qty = stock_qty + $2, updated_at = now() WHERE id = $1`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Las ventas históricas conservan nombre y costo.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
