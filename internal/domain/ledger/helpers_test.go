package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testZone = time.FixedZone("COT", -5*3600)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

// assertDec compara montos por valor (ignora la escala interna del decimal).
func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{fmt.Sprintf("esperado %s, obtenido %s", want, got)}, msgAndArgs...)...)
}

func fixedClock(t time.Time) ledger.Clock {
	return func() time.Time { return t }
}

// seqIDs genera id-1, id-2, ... de forma determinista.
func seqIDs() ledger.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// seqGen devuelve los valores en orden y repite el último.
func seqGen(vals ...string) ledger.IDGenerator {
	i := 0
	return func() string {
		v := vals[i]
		if i < len(vals)-1 {
			i++
		}
		return v
	}
}

func product(id string, stock int, cost, sale string) entity.Product {
	return entity.Product{
		ID:            id,
		Name:          "Producto " + id,
		Barcode:       "77" + id,
		CostPrice:     dec(cost),
		SalePrice:     dec(sale),
		StockQty:      stock,
		MinStockAlert: 2,
	}
}

func catalog(products ...entity.Product) *entity.Snapshot {
	return &entity.Snapshot{Products: products}
}
