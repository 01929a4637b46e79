package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// COGS
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_COGSUsaCostoCapturado(t *testing.T) {
	p := product("p1", 10, "9", "20")
	f := ledger.Filtered{Sales: []entity.Sale{{
		GrandTotal: dec("40"),
		Items:      []entity.SaleItem{{ProductID: "p1", Qty: 2, Price: dec("20"), CostPrice: decPtr("5"), Total: dec("40")}},
	}}}

	s := ledger.Summarize(f, []entity.Product{p})
	assertDec(t, "10", s.TotalCOGS, "debe usarse el costo desnormalizado (5), no el del catálogo (9)")
}

func TestSummarize_COGSSinCostoUsaCatalogo(t *testing.T) {
	p := product("p1", 10, "7", "20")
	f := ledger.Filtered{Sales: []entity.Sale{{
		GrandTotal: dec("60"),
		Items:      []entity.SaleItem{{ProductID: "p1", Qty: 3, Price: dec("20"), Total: dec("60")}},
	}}}

	s := ledger.Summarize(f, []entity.Product{p})
	assertDec(t, "21", s.TotalCOGS)
}

func TestSummarize_COGSProductoEliminadoSinCosto(t *testing.T) {
	f := ledger.Filtered{Sales: []entity.Sale{{
		GrandTotal: dec("50"),
		Items:      []entity.SaleItem{{ProductID: "borrado", Qty: 1, Price: dec("50"), Total: dec("50")}},
	}}}

	s := ledger.Summarize(f, nil)
	assertDec(t, "0", s.TotalCOGS, "un ítem huérfano sin costo aporta cero")
	assertDec(t, "50", s.TotalSalesRevenue)
}

// ──────────────────────────────────────────────────────────────────────────────
// Utilidad neta de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_UtilidadNeta(t *testing.T) {
	f := ledger.Filtered{
		Sales: []entity.Sale{
			{GrandTotal: dec("600"), Items: []entity.SaleItem{{ProductID: "a", Qty: 2, CostPrice: decPtr("150")}}},
			{GrandTotal: dec("400"), Items: []entity.SaleItem{{ProductID: "b", Qty: 1, CostPrice: decPtr("100")}}},
		},
		Repairs: []entity.RepairTicket{
			{TotalCost: dec("120")},
			{TotalCost: dec("80")},
		},
		Expenses: []entity.Expense{
			{Category: entity.ExpenseRent, Amount: dec("100")},
			{Category: entity.ExpenseUtilities, Amount: dec("50")},
		},
	}

	s := ledger.Summarize(f, nil)
	assertDec(t, "1000", s.TotalSalesRevenue)
	assertDec(t, "400", s.TotalCOGS)
	assertDec(t, "200", s.TotalRepairRevenue)
	assertDec(t, "150", s.TotalExpenses)
	assertDec(t, "800", s.GrossProfit)
	assertDec(t, "650", s.NetProfit)
	assert.Equal(t, 2, s.SalesCount)
	assert.Equal(t, 2, s.RepairCount)
	assert.Equal(t, 2, s.ExpenseCount)
}

func TestSummarize_Vacio(t *testing.T) {
	s := ledger.Summarize(ledger.Filtered{}, nil)
	assert.True(t, s.NetProfit.IsZero())
	assert.True(t, s.GrossProfit.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos por categoría y widgets del tablero
// ──────────────────────────────────────────────────────────────────────────────

func TestExpensesByCategory(t *testing.T) {
	shares := ledger.ExpensesByCategory([]entity.Expense{
		{Category: entity.ExpenseRent, Amount: dec("300")},
		{Category: entity.ExpenseOther, Amount: dec("100")},
		{Category: "papeleria", Amount: dec("100")},
	})

	require.Len(t, shares, len(entity.ExpenseCategories))
	for i, cat := range entity.ExpenseCategories {
		assert.Equal(t, cat, shares[i].Category, "el orden es fijo")
	}
	byCat := map[string]ledger.CategoryShare{}
	for _, s := range shares {
		byCat[s.Category] = s
	}
	assertDec(t, "300", byCat[entity.ExpenseRent].Amount)
	assertDec(t, "60", byCat[entity.ExpenseRent].Percent)
	assertDec(t, "200", byCat[entity.ExpenseOther].Amount, "categorías desconocidas van a other")
	assertDec(t, "40", byCat[entity.ExpenseOther].Percent)
	assertDec(t, "0", byCat[entity.ExpenseSalaries].Percent)
}

func TestExpensesByCategory_SinGastos(t *testing.T) {
	for _, s := range ledger.ExpensesByCategory(nil) {
		assert.True(t, s.Percent.IsZero())
		assert.True(t, s.Amount.Equal(decimal.Zero))
	}
}

func TestTopStocked(t *testing.T) {
	products := []entity.Product{
		product("a", 1, "1", "2"),
		product("b", 9, "1", "2"),
		product("c", 5, "1", "2"),
	}
	top := ledger.TopStocked(products, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].ID)
	assert.Equal(t, "c", top[1].ID)
	assert.Equal(t, "a", products[0].ID, "el slice original no se modifica")
}

func TestRecentSales(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, testZone)
	sales := []entity.Sale{
		{ID: "vieja", CreatedAt: base},
		{ID: "nueva", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "media", CreatedAt: base.Add(time.Hour)},
	}
	recent := ledger.RecentSales(sales, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "nueva", recent[0].ID)
	assert.Equal(t, "media", recent[1].ID)
}

func TestOpenRepairs(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, testZone)
	repairs := []entity.RepairTicket{
		{ID: "entregado", Status: entity.RepairDelivered, ReceivedDate: base.Add(3 * time.Hour)},
		{ID: "recibido", Status: entity.RepairReceived, ReceivedDate: base},
		{ID: "listo", Status: entity.RepairCompleted, ReceivedDate: base.Add(time.Hour)},
		{ID: "cancelado", Status: entity.RepairCanceled, ReceivedDate: base.Add(2 * time.Hour)},
	}
	open := ledger.OpenRepairs(repairs, 5)
	require.Len(t, open, 2)
	assert.Equal(t, "listo", open[0].ID)
	assert.Equal(t, "recibido", open[1].ID)

	assert.Len(t, ledger.OpenRepairs(repairs, 1), 1)
}
