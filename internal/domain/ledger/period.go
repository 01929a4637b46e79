// Package ledger contiene el motor contable puro del punto de venta: filtro de
// períodos, agregación financiera, valorización de inventario, reconciliación
// de carritos y la máquina de estados de reparaciones.
//
// Ninguna función de este paquete realiza I/O ni guarda estado global; todas
// operan sobre un entity.Snapshot y devuelven vistas derivadas o intents.
package ledger

import (
	"strings"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Period selector de período de reporte.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// AllTimeAnchor fecha ancla anterior a cualquier dato real; solo se usa como etiqueta de inicio.
var AllTimeAnchor = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParsePeriod convierte el parámetro de consulta en Period. Vacío = today.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodToday, nil
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return p, nil
	}
	return "", domain.ErrInvalidPeriod
}

// Label etiqueta legible del período.
func (p Period) Label() string {
	switch p {
	case PeriodToday:
		return "Hoy"
	case PeriodWeek:
		return "Últimos 7 días"
	case PeriodMonth:
		return "Este mes"
	default:
		return "Todo"
	}
}

// Window intervalo semiabierto [Start, +∞). Si Unbounded, contiene cualquier instante,
// incluso timestamps ausentes.
type Window struct {
	Start     time.Time
	Unbounded bool
}

// WindowFor calcula la ventana del período en la zona horaria de now.
func WindowFor(p Period, now time.Time) Window {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodWeek:
		return Window{Start: midnight.AddDate(0, 0, -7)}
	case PeriodMonth:
		return Window{Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())}
	case PeriodAll:
		return Window{Start: AllTimeAnchor.In(now.Location()), Unbounded: true}
	default:
		return Window{Start: midnight}
	}
}

// Contains indica si t cae dentro de la ventana (inclusivo en Start).
// Un timestamp ausente (zero) equivale a epoch 0 y solo entra en ventanas sin límite.
func (w Window) Contains(t time.Time) bool {
	if w.Unbounded {
		return true
	}
	if t.IsZero() {
		t = time.Unix(0, 0)
	}
	return !t.Before(w.Start)
}

// Filtered subconjunto de ventas, gastos y reparaciones dentro de una ventana.
type Filtered struct {
	Window   Window
	Sales    []entity.Sale
	Expenses []entity.Expense
	Repairs  []entity.RepairTicket
	// Catalog productos del mismo snapshot; respaldo de costo para el COGS.
	Catalog []entity.Product
}

// Filter particiona el snapshot según la ventana: ventas y gastos por CreatedAt,
// reparaciones por ReceivedDate.
func Filter(s *entity.Snapshot, w Window) Filtered {
	out := Filtered{Window: w}
	if s == nil {
		return out
	}
	out.Catalog = s.Products
	for _, sale := range s.Sales {
		if w.Contains(sale.CreatedAt) {
			out.Sales = append(out.Sales, sale)
		}
	}
	for _, e := range s.Expenses {
		if w.Contains(e.CreatedAt) {
			out.Expenses = append(out.Expenses, e)
		}
	}
	for _, r := range s.Repairs {
		if w.Contains(r.ReceivedDate) {
			out.Repairs = append(out.Repairs, r)
		}
	}
	return out
}
