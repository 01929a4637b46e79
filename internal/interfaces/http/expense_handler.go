package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/application/pos"
)

// ExpenseHandler gastos operativos.
type ExpenseHandler struct {
	uc *pos.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *pos.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// List gastos del período, el más reciente primero.
// GET /api/expenses?period=
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExpenseRequest  true  "Categoría, monto y notas"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
