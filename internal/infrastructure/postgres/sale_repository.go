package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var (
	_ repository.SaleRepository     = (*SaleRepo)(nil)
	_ repository.PurchaseRepository = (*PurchaseRepo)(nil)
)

// SaleRepo ventas confirmadas; las líneas van en la columna items (JSONB).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el repositorio. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// List devuelve todas las ventas en orden cronológico.
func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_no, customer_name, customer_phone, items, sub_total, total_discount, tax,
			grand_total, payment_method, created_at, user_id
		FROM sales ORDER BY created_at NULLS FIRST, id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Sale, 0)
	for rows.Next() {
		var s entity.Sale
		var items []byte
		var created *time.Time
		if err := rows.Scan(&s.ID, &s.InvoiceNo, &s.CustomerName, &s.CustomerPhone, &items, &s.SubTotal,
			&s.TotalDiscount, &s.Tax, &s.GrandTotal, &s.PaymentMethod, &created, &s.UserID); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if s.Items, err = decodeSaleItems(items); err != nil {
			return nil, err
		}
		s.CreatedAt = fromNullTime(created)
		list = append(list, s)
	}
	return list, rows.Err()
}

// Create inserta la venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items, err := encodeSaleItems(s.Items)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO sales (id, invoice_no, customer_name, customer_phone, items, sub_total, total_discount, tax,
			grand_total, payment_method, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.InvoiceNo, s.CustomerName, s.CustomerPhone, items, s.SubTotal, s.TotalDiscount, s.Tax,
		s.GrandTotal, s.PaymentMethod, nullTime(s.CreatedAt), s.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// PurchaseRepo compras a proveedor.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el repositorio. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// List devuelve todas las compras en orden cronológico.
func (r *PurchaseRepo) List(ctx context.Context) ([]entity.Purchase, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_no, supplier, phone, items, grand_total, created_at, user_id
		FROM purchases ORDER BY created_at NULLS FIRST, id`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Purchase, 0)
	for rows.Next() {
		var p entity.Purchase
		var items []byte
		var created *time.Time
		if err := rows.Scan(&p.ID, &p.InvoiceNo, &p.Supplier, &p.Phone, &items, &p.GrandTotal, &created, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if p.Items, err = decodePurchaseItems(items); err != nil {
			return nil, err
		}
		p.CreatedAt = fromNullTime(created)
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create inserta la compra.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	items, err := encodePurchaseItems(p.Items)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO purchases (id, invoice_no, supplier, phone, items, grand_total, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.InvoiceNo, p.Supplier, p.Phone, items, p.GrandTotal, nullTime(p.CreatedAt), p.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}
