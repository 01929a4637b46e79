package pdf

import (
	"context"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

var expenseLabels = map[string]string{
	entity.ExpenseRent:      "Arriendo",
	entity.ExpenseSalaries:  "Salarios",
	entity.ExpenseUtilities: "Servicios",
	entity.ExpenseMarketing: "Publicidad",
	entity.ExpenseOther:     "Otros",
}

// PeriodReport reporte financiero A4 del período.
func (g *MarotoPDFGenerator) PeriodReport(_ context.Context, r pos.PeriodReport) ([]byte, error) {
	s := r.Summary
	from := "inicio"
	if !r.From.IsZero() {
		from = dateLabel(r.From)
	}

	m := g.newDocument("Reporte "+r.Label, pos.ModeA4)
	m.AddRows(g.headerRow("REPORTE FINANCIERO", strings.ToUpper(r.Label), dateLabel(r.GeneratedAt)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Desde "+from+" hasta "+dateLabel(r.GeneratedAt), props.Text{Size: 8, Top: 2, Color: colorGray}),
	)))

	m.AddRows(sectionRow("RESULTADOS"))
	m.AddRows(g.figureRows([][2]string{
		{"Ventas", g.money.format(s.TotalSalesRevenue)},
		{"Costo de la mercancía vendida", g.money.format(s.TotalCOGS)},
		{"Ingresos por reparaciones", g.money.format(s.TotalRepairRevenue)},
		{"Utilidad bruta", g.money.format(s.GrossProfit)},
		{"Gastos operativos", g.money.format(s.TotalExpenses)},
	})...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRows([][2]string{{"UTILIDAD NETA:", g.money.format(s.NetProfit)}}, false)...)

	m.AddRows(sectionRow("ACTIVIDAD"))
	m.AddRows(g.figureRows([][2]string{
		{"Ventas registradas", itoa(s.SalesCount)},
		{"Reparaciones recibidas", itoa(s.RepairCount)},
		{"Gastos registrados", itoa(s.ExpenseCount)},
	})...)

	if len(r.Expenses) > 0 {
		m.AddRows(sectionRow("GASTOS POR CATEGORÍA"))
		pairs := make([][2]string, 0, len(r.Expenses))
		for _, c := range r.Expenses {
			pairs = append(pairs, [2]string{
				nonEmpty(expenseLabels[c.Category], c.Category) + " (" + c.Percent.StringFixed(2) + "%)",
				g.money.format(c.Amount),
			})
		}
		m.AddRows(g.figureRows(pairs)...)
	}
	m.AddRows(g.footerRow(false))
	return generate(m)
}

func sectionRow(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 4}),
	))
}

func (g *MarotoPDFGenerator) figureRows(pairs [][2]string) []core.Row {
	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(p[0], props.Text{Size: 9, Top: 1})),
			col.New(4).Add(text.New(p[1], props.Text{Size: 9, Top: 1, Align: align.Right})),
		))
	}
	return rows
}
