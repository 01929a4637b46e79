package postgres_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/postgres"
)

func TestWriteSeedSQL(t *testing.T) {
	cost := decimal.NewFromInt(3)
	snap := &entity.Snapshot{
		Products: []entity.Product{{ID: "p1", Name: "Cable O'Neil", CostPrice: decimal.NewFromFloat(4.5), StockQty: 3, MinStockAlert: 2}},
		Sales: []entity.Sale{{
			ID: "s1", InvoiceNo: "INV-000001", PaymentMethod: entity.PaymentCash,
			Items:     []entity.SaleItem{{ProductID: "p1", Name: "Cable", Qty: 1, Price: decimal.NewFromInt(9), CostPrice: &cost, Total: decimal.NewFromInt(9)}},
			CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		}},
		Expenses: []entity.Expense{{ID: "e1", Category: entity.ExpenseRent, Amount: decimal.NewFromInt(100)}},
		Repairs:  []entity.RepairTicket{{ID: "r1", TicketNo: "REP-1", Status: entity.RepairReceived}},
	}

	var buf bytes.Buffer
	require.NoError(t, postgres.WriteSeedSQL(&buf, snap))
	out := buf.String()

	assert.True(t, strings.HasSuffix(out, "COMMIT;\n"))
	assert.Contains(t, out, "'Cable O''Neil'", "las comillas se escapan")
	assert.Contains(t, out, "4.50")
	assert.Contains(t, out, `"costPrice":"3"`, "las líneas usan las claves heredadas")
	assert.Contains(t, out, "'2024-05-01T10:00:00Z'")
	assert.Contains(t, out, "NULL", "timestamps ausentes quedan NULL")
	assert.Equal(t, 4, strings.Count(out, "ON CONFLICT (id) DO NOTHING"))
}

func TestSchema_IncluyeTriggers(t *testing.T) {
	sql, err := postgres.Schema()
	require.NoError(t, err)
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS products")
	assert.Contains(t, sql, "pg_notify('"+postgres.ChangeChannel+"'")
}
