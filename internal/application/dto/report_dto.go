package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryResponse resumen financiero de un período.
type SummaryResponse struct {
	Period             string          `json:"period"`
	Label              string          `json:"label"`
	From               *time.Time      `json:"from,omitempty"`
	TotalSalesRevenue  decimal.Decimal `json:"total_sales_revenue"`
	TotalRepairRevenue decimal.Decimal `json:"total_repair_revenue"`
	TotalCOGS          decimal.Decimal `json:"total_cogs"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	GrossProfit        decimal.Decimal `json:"gross_profit"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	SalesCount         int             `json:"sales_count"`
	RepairCount        int             `json:"repair_count"`
	ExpenseCount       int             `json:"expense_count"`
}

// CategoryShareResponse participación de una categoría de gasto.
type CategoryShareResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// ExpenseBreakdownResponse gastos del período por categoría.
type ExpenseBreakdownResponse struct {
	Period     string                  `json:"period"`
	Total      decimal.Decimal         `json:"total"`
	Categories []CategoryShareResponse `json:"categories"`
}

// InventoryValueResponse capital inmovilizado en existencias.
type InventoryValueResponse struct {
	Value         decimal.Decimal `json:"value"`
	ProductCount  int             `json:"product_count"`
	LowStockCount int             `json:"low_stock_count"`
}

// DashboardResponse vista del día: totales, capital, últimas ventas y reparaciones abiertas.
type DashboardResponse struct {
	Today          SummaryResponse   `json:"today"`
	InventoryValue decimal.Decimal   `json:"inventory_value"`
	LowStockCount  int               `json:"low_stock_count"`
	RecentSales    []SaleResponse    `json:"recent_sales"`
	OpenRepairs    []RepairResponse  `json:"open_repairs"`
	TopStocked     []ProductResponse `json:"top_stocked"`
	SnapshotAt     *time.Time        `json:"snapshot_at,omitempty"`
}
