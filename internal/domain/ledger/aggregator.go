package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Summary resumen financiero de un período.
type Summary struct {
	TotalSalesRevenue  decimal.Decimal
	TotalRepairRevenue decimal.Decimal
	TotalCOGS          decimal.Decimal
	TotalExpenses      decimal.Decimal
	GrossProfit        decimal.Decimal // (ventas - COGS) + reparaciones
	NetProfit          decimal.Decimal // GrossProfit - gastos
	SalesCount         int
	RepairCount        int
	ExpenseCount       int
}

// Summarize agrega el subconjunto filtrado. El catálogo completo se usa solo para
// buscar el costo actual cuando la línea no capturó su costo histórico.
// Nunca falla: datos faltantes aportan cero.
func Summarize(f Filtered, catalog []entity.Product) Summary {
	costs := make(map[string]decimal.Decimal, len(catalog))
	for _, p := range catalog {
		costs[p.ID] = p.CostPrice
	}

	var s Summary
	for _, sale := range f.Sales {
		s.TotalSalesRevenue = s.TotalSalesRevenue.Add(sale.GrandTotal)
		for _, item := range sale.Items {
			s.TotalCOGS = s.TotalCOGS.Add(ItemCOGS(item, costs))
		}
	}
	for _, r := range f.Repairs {
		s.TotalRepairRevenue = s.TotalRepairRevenue.Add(r.TotalCost)
	}
	for _, e := range f.Expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}
	s.GrossProfit = s.TotalSalesRevenue.Sub(s.TotalCOGS).Add(s.TotalRepairRevenue)
	s.NetProfit = s.GrossProfit.Sub(s.TotalExpenses)
	s.SalesCount = len(f.Sales)
	s.RepairCount = len(f.Repairs)
	s.ExpenseCount = len(f.Expenses)
	return s
}

// ItemCOGS costo de una línea: costo histórico si existe, si no el costo actual del
// catálogo, si no cero (producto eliminado sin costo capturado).
func ItemCOGS(item entity.SaleItem, costs map[string]decimal.Decimal) decimal.Decimal {
	qty := decimal.NewFromInt(int64(item.Qty))
	if item.CostPrice != nil {
		return item.CostPrice.Mul(qty)
	}
	if c, ok := costs[item.ProductID]; ok {
		return c.Mul(qty)
	}
	return decimal.Zero
}

// CategoryShare monto y porcentaje de una categoría de gasto.
type CategoryShare struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal // 0-100, dos decimales
}

// ExpensesByCategory reparte los gastos en el orden fijo de entity.ExpenseCategories.
// Categorías desconocidas (datos heredados) se acumulan en "other".
func ExpensesByCategory(expenses []entity.Expense) []CategoryShare {
	totals := make(map[string]decimal.Decimal, len(entity.ExpenseCategories))
	grand := decimal.Zero
	for _, e := range expenses {
		cat := e.Category
		if !entity.ValidExpenseCategory(cat) {
			cat = entity.ExpenseOther
		}
		totals[cat] = totals[cat].Add(e.Amount)
		grand = grand.Add(e.Amount)
	}
	hundred := decimal.NewFromInt(100)
	out := make([]CategoryShare, 0, len(entity.ExpenseCategories))
	for _, cat := range entity.ExpenseCategories {
		share := CategoryShare{Category: cat, Amount: totals[cat]}
		if grand.GreaterThan(decimal.Zero) {
			share.Percent = share.Amount.Div(grand).Mul(hundred).Round(2)
		}
		out = append(out, share)
	}
	return out
}

// TopStocked devuelve hasta n productos con mayor existencia, sin modificar el slice original.
func TopStocked(products []entity.Product, n int) []entity.Product {
	sorted := make([]entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StockQty > sorted[j].StockQty })
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// RecentSales devuelve las últimas n ventas, la más reciente primero.
func RecentSales(sales []entity.Sale, n int) []entity.Sale {
	sorted := make([]entity.Sale, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// OpenRepairs devuelve hasta n tickets aún no entregados ni cancelados, el más reciente primero.
func OpenRepairs(repairs []entity.RepairTicket, n int) []entity.RepairTicket {
	open := make([]entity.RepairTicket, 0, len(repairs))
	for _, r := range repairs {
		if r.Status == entity.RepairDelivered || r.Status == entity.RepairCanceled {
			continue
		}
		open = append(open, r)
	}
	sort.SliceStable(open, func(i, j int) bool { return open[i].ReceivedDate.After(open[j].ReceivedDate) })
	if n >= 0 && len(open) > n {
		open = open[:n]
	}
	return open
}
