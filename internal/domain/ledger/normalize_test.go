package ledger_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

func TestCoerceDecimal(t *testing.T) {
	assertDec(t, "12.5", ledger.CoerceDecimal(12.5))
	assertDec(t, "7", ledger.CoerceDecimal(" 7 "))
	assertDec(t, "3", ledger.CoerceDecimal(json.Number("3")))
	assertDec(t, "0", ledger.CoerceDecimal("abc"), "no numérico es cero")
	assertDec(t, "0", ledger.CoerceDecimal(nil))
	assertDec(t, "0", ledger.CoerceDecimal([]any{1}))
	assert.Equal(t, 4, ledger.CoerceInt("4.9"))
}

func TestCoerceTime(t *testing.T) {
	assert.Equal(t, time.UnixMilli(1700000000000), ledger.CoerceTime(float64(1700000000000)))
	assert.Equal(t, time.UnixMilli(1700000000000), ledger.CoerceTime("1700000000000"))
	assert.True(t, ledger.CoerceTime(nil).IsZero())
	assert.True(t, ledger.CoerceTime("ayer").IsZero())
}

func TestNormalizeProduct_AliasYDefaults(t *testing.T) {
	p := ledger.NormalizeProduct("k1", ledger.Record{
		"name": "Cable USB-C",
		"cost": "4.5",
		"qty":  float64(12),
	})
	assert.Equal(t, "k1", p.ID, "la clave se usa si el registro no trae id")
	assertDec(t, "4.5", p.CostPrice)
	assert.Equal(t, 12, p.StockQty)
	assert.Equal(t, ledger.DefaultMinStockAlert, p.MinStockAlert)
	assert.Equal(t, ledger.DefaultCategory, p.Category)
	assert.Equal(t, ledger.DefaultBrand, p.Brand)

	p = ledger.NormalizeProduct("k2", ledger.Record{
		"id": "p9", "costPrice": float64(8), "cost": float64(3), "stockQty": "x", "minStock": float64(5), "brand": "Anker",
	})
	assert.Equal(t, "p9", p.ID)
	assertDec(t, "8", p.CostPrice, "costPrice tiene prioridad sobre cost")
	assert.Equal(t, 0, p.StockQty)
	assert.Equal(t, 5, p.MinStockAlert)
	assert.Equal(t, "Anker", p.Brand)
}

func TestNormalizeSale_ItemsSinCosto(t *testing.T) {
	s := ledger.NormalizeSale("s1", ledger.Record{
		"invoiceNo": "INV-000001",
		"createdAt": float64(1700000000000),
		"items": []any{
			map[string]any{"productId": "a", "qty": float64(2), "price": float64(10)},
			map[string]any{"productId": "b", "qty": float64(1), "price": float64(5), "costPrice": float64(3)},
		},
	})
	require.Len(t, s.Items, 2)
	assert.Nil(t, s.Items[0].CostPrice, "sin costo capturado queda nil")
	require.NotNil(t, s.Items[1].CostPrice)
	assertDec(t, "3", *s.Items[1].CostPrice)
	assertDec(t, "25", s.SubTotal)
	assertDec(t, "25", s.GrandTotal)
	assert.Equal(t, entity.PaymentCash, s.PaymentMethod)
}

func TestNormalizeRepair_EstadoHeredado(t *testing.T) {
	r := ledger.NormalizeRepair("r1", ledger.Record{
		"status":    "جاهز للتسليم",
		"totalCost": float64(300),
	})
	assert.Equal(t, entity.RepairCompleted, r.Status)
	assertDec(t, "300", r.TotalCost, "tickets sin desglose conservan el total como mano de obra")

	r = ledger.NormalizeRepair("r2", ledger.Record{
		"status":    "desconocido",
		"laborCost": float64(20),
		"partsUsed": map[string]any{
			"0": map[string]any{"productId": "s1", "qty": float64(1), "price": float64(50)},
		},
	})
	assert.Equal(t, entity.RepairReceived, r.Status)
	assertDec(t, "70", r.TotalCost)
}

func TestNormalizeExpense_CategoriaDesconocida(t *testing.T) {
	e := ledger.NormalizeExpense("e1", ledger.Record{"category": "Rent", "amount": "150"})
	assert.Equal(t, entity.ExpenseRent, e.Category)
	assertDec(t, "150", e.Amount)

	e = ledger.NormalizeExpense("e2", ledger.Record{"category": "café"})
	assert.Equal(t, entity.ExpenseOther, e.Category)
}

func TestNormalizePurchase(t *testing.T) {
	p := ledger.NormalizePurchase("pu1", ledger.Record{
		"supplier": "Sur",
		"items": []any{
			map[string]any{"productId": "NEW-abcde", "qty": float64(2), "costPrice": float64(4)},
		},
	})
	require.Len(t, p.Items, 1)
	assert.True(t, p.Items[0].IsNew)
	assertDec(t, "8", p.GrandTotal)
}
