package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ledger/internal/application/pos"
)

// DashboardHandler resumen de la pantalla de inicio.
type DashboardHandler struct {
	uc *pos.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *pos.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve ventas del día, valor del inventario, alertas de stock,
// últimas ventas y reparaciones abiertas.
// GET /api/dashboard/summary
//
// No requiere parámetros; el "hoy" se calcula con el reloj del servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard())
}
