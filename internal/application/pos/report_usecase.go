package pos

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// Tamaño de las listas del tablero.
const dashboardListSize = 5

// ReportUseCase vistas financieras derivadas del snapshot.
type ReportUseCase struct {
	core     Core
	renderer DocumentRenderer
	exporter WorkbookExporter
}

// NewReportUseCase construye el caso de uso. renderer y exporter pueden ser nil si el
// despliegue no ofrece impresión o exportación.
func NewReportUseCase(core Core, renderer DocumentRenderer, exporter WorkbookExporter) *ReportUseCase {
	return &ReportUseCase{core: core, renderer: renderer, exporter: exporter}
}

// filtered toma un único snapshot: ventas, gastos y catálogo del resultado son coherentes entre sí.
func (uc *ReportUseCase) filtered(period string) (ledger.Period, ledger.Filtered, error) {
	p, err := ledger.ParsePeriod(period)
	if err != nil {
		return "", ledger.Filtered{}, err
	}
	w := ledger.WindowFor(p, uc.core.now())
	return p, ledger.Filter(uc.core.snapshot(), w), nil
}

// PeriodSummary ingresos, COGS, gastos y utilidades del período.
func (uc *ReportUseCase) PeriodSummary(period string) (*dto.SummaryResponse, error) {
	p, f, err := uc.filtered(period)
	if err != nil {
		return nil, err
	}
	s := ledger.Summarize(f, f.Catalog)
	out := toSummaryResponse(p, f.Window, s)
	return &out, nil
}

// Dashboard totales del día, capital en inventario, últimas ventas y reparaciones abiertas.
func (uc *ReportUseCase) Dashboard() *dto.DashboardResponse {
	snap := uc.core.snapshot()
	w := ledger.WindowFor(ledger.PeriodToday, uc.core.now())
	today := ledger.Summarize(ledger.Filter(snap, w), snap.Products)

	recent := ledger.RecentSales(snap.Sales, dashboardListSize)
	sales := make([]dto.SaleResponse, 0, len(recent))
	for _, s := range recent {
		sales = append(sales, toSaleResponse(s))
	}
	open := ledger.OpenRepairs(snap.Repairs, dashboardListSize)
	repairs := make([]dto.RepairResponse, 0, len(open))
	for _, r := range open {
		repairs = append(repairs, toRepairResponse(r))
	}

	return &dto.DashboardResponse{
		Today:          toSummaryResponse(ledger.PeriodToday, w, today),
		InventoryValue: ledger.InventoryValue(snap.Products),
		LowStockCount:  len(ledger.LowStock(snap.Products)),
		RecentSales:    sales,
		OpenRepairs:    repairs,
		TopStocked:     toProductResponses(ledger.TopStocked(snap.Products, dashboardListSize)),
		SnapshotAt:     timePtr(snap.TakenAt),
	}
}

// InventoryValue Σ costo × existencia de todo el catálogo.
func (uc *ReportUseCase) InventoryValue() *dto.InventoryValueResponse {
	products := uc.core.snapshot().Products
	return &dto.InventoryValueResponse{
		Value:         ledger.InventoryValue(products),
		ProductCount:  len(products),
		LowStockCount: len(ledger.LowStock(products)),
	}
}

// LowStock productos en o por debajo de su umbral de alerta.
func (uc *ReportUseCase) LowStock() []dto.ProductResponse {
	return toProductResponses(ledger.LowStock(uc.core.snapshot().Products))
}

// ExpenseBreakdown gastos del período por categoría, en orden fijo.
func (uc *ReportUseCase) ExpenseBreakdown(period string) (*dto.ExpenseBreakdownResponse, error) {
	p, f, err := uc.filtered(period)
	if err != nil {
		return nil, err
	}
	out := &dto.ExpenseBreakdownResponse{Period: string(p)}
	for _, share := range ledger.ExpensesByCategory(f.Expenses) {
		out.Total = out.Total.Add(share.Amount)
		out.Categories = append(out.Categories, dto.CategoryShareResponse{
			Category: share.Category,
			Amount:   share.Amount,
			Percent:  share.Percent,
		})
	}
	return out, nil
}

// ExportWorkbook hoja de cálculo con las ventas y gastos del período.
func (uc *ReportUseCase) ExportWorkbook(ctx context.Context, period string) ([]byte, string, error) {
	if uc.exporter == nil {
		return nil, "", fmt.Errorf("export: %w", domain.ErrUnavailable)
	}
	p, f, err := uc.filtered(period)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.Export(ctx, f.Sales, f.Expenses)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("reporte_%s_%s.xlsx", p, uc.core.now().Format("20060102"))
	return data, filename, nil
}

// PrintReport PDF A4 con el resumen del período y el desglose de gastos.
func (uc *ReportUseCase) PrintReport(ctx context.Context, period string) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", fmt.Errorf("print: %w", domain.ErrUnavailable)
	}
	p, f, err := uc.filtered(period)
	if err != nil {
		return nil, "", err
	}
	now := uc.core.now()
	report := PeriodReport{
		Period:      p,
		Label:       p.Label(),
		Summary:     ledger.Summarize(f, f.Catalog),
		Expenses:    ledger.ExpensesByCategory(f.Expenses),
		GeneratedAt: now,
	}
	if !f.Window.Unbounded {
		report.From = f.Window.Start
	}
	data, err := uc.renderer.PeriodReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("print: %w", err)
	}
	return data, fmt.Sprintf("reporte_%s_%s.pdf", p, now.Format("20060102")), nil
}
