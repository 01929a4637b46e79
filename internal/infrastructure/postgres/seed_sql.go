package postgres

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// WriteSeedSQL escribe INSERTs idempotentes (ON CONFLICT DO NOTHING) para todo el snapshot.
// El archivo resultante se aplica después de migrations/001_schema.sql.
func WriteSeedSQL(w io.Writer, snap *entity.Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "-- Datos importados de la aplicación anterior (%s)\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(bw, "-- %d productos, %d ventas, %d compras, %d gastos, %d reparaciones\n\nBEGIN;\n\n",
		len(snap.Products), len(snap.Sales), len(snap.Purchases), len(snap.Expenses), len(snap.Repairs))

	for _, p := range snap.Products {
		fmt.Fprintf(bw, "INSERT INTO products (%s) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %d, %d, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			productColumns, lit(p.ID), lit(p.Name), lit(p.Barcode), lit(p.SKU), lit(p.Category), lit(p.Brand),
			num(p.CostPrice), num(p.SalePrice), p.StockQty, p.MinStockAlert, ts(p.CreatedAt), ts(p.UpdatedAt))
	}
	for _, s := range snap.Sales {
		items, err := encodeSaleItems(s.Items)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "INSERT INTO sales (id, invoice_no, customer_name, customer_phone, items, sub_total, total_discount, tax, grand_total, payment_method, created_at, user_id) VALUES (%s, %s, %s, %s, %s::jsonb, %s, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			lit(s.ID), lit(s.InvoiceNo), lit(s.CustomerName), lit(s.CustomerPhone), lit(string(items)),
			num(s.SubTotal), num(s.TotalDiscount), num(s.Tax), num(s.GrandTotal), lit(s.PaymentMethod), ts(s.CreatedAt), lit(s.UserID))
	}
	for _, p := range snap.Purchases {
		items, err := encodePurchaseItems(p.Items)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "INSERT INTO purchases (id, invoice_no, supplier, phone, items, grand_total, created_at, user_id) VALUES (%s, %s, %s, %s, %s::jsonb, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			lit(p.ID), lit(p.InvoiceNo), lit(p.Supplier), lit(p.Phone), lit(string(items)), num(p.GrandTotal), ts(p.CreatedAt), lit(p.UserID))
	}
	for _, e := range snap.Expenses {
		fmt.Fprintf(bw, "INSERT INTO expenses (id, category, amount, notes, created_at, added_by) VALUES (%s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			lit(e.ID), lit(e.Category), num(e.Amount), lit(e.Notes), ts(e.CreatedAt), lit(e.AddedBy))
	}
	for _, t := range snap.Repairs {
		parts, err := encodeSaleItems(t.PartsUsed)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "INSERT INTO repair_tickets (%s) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s::jsonb, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			strings.Join(strings.Fields(repairColumns), " "),
			lit(t.ID), lit(t.TicketNo), lit(t.CustomerName), lit(t.CustomerPhone), lit(t.DeviceType), lit(t.DeviceModel),
			lit(t.IMEI), lit(t.IssueDescription), lit(t.Technician), lit(string(t.Status)), lit(string(parts)),
			num(t.LaborCost), num(t.TotalCost), num(t.Deposit), ts(t.ReceivedDate), ts(t.ExpectedDelivery), ts(t.UpdatedAt))
	}
	bw.WriteString("\nCOMMIT;\n")
	return bw.Flush()
}

func lit(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func num(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ts(t time.Time) string {
	if t.IsZero() {
		return "NULL"
	}
	return lit(t.UTC().Format(time.RFC3339Nano))
}
