package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ledger/internal/application/pos"
)

// ReportHandler reportes financieros e inventario.
type ReportHandler struct {
	uc *pos.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *pos.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | all (default today)"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.PeriodSummary(c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Expenses godoc
// @Summary      Gastos del período por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | all"
// @Success      200  {object}  dto.ExpenseBreakdownResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/expenses [get]
func (h *ReportHandler) Expenses(c *fiber.Ctx) error {
	out, err := h.uc.ExpenseBreakdown(c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar ventas y gastos del período a Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        period  query  string  false  "today | week | month | all"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	body, name, err := h.uc.ExportWorkbook(c.UserContext(), c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimeXLSX, name, body)
}

// Print godoc
// @Summary      Reporte financiero imprimible (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  query  string  false  "today | week | month | all"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/print [get]
func (h *ReportHandler) Print(c *fiber.Ctx) error {
	body, name, err := h.uc.PrintReport(c.UserContext(), c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimePDF, name, body)
}

// InventoryValue valor del inventario a costo y a precio de venta.
// GET /api/inventory/value
func (h *ReportHandler) InventoryValue(c *fiber.Ctx) error {
	return c.JSON(h.uc.InventoryValue())
}

// LowStock productos en o bajo su mínimo.
// GET /api/inventory/low-stock
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.uc.LowStock())
}
