package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/application/pos"
)

// RepairHandler tickets de servicio técnico.
type RepairHandler struct {
	uc *pos.RepairUseCase
}

// NewRepairHandler construye el handler.
func NewRepairHandler(uc *pos.RepairUseCase) *RepairHandler {
	return &RepairHandler{uc: uc}
}

// List godoc
// @Summary      Listar tickets de reparación
// @Tags         repairs
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Received | Completed | Delivered | Canceled"
// @Success      200  {array}   dto.RepairResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/repairs [get]
func (h *RepairHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/repairs/:id
func (h *RepairHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Recibir equipo
// @Description  Crea el ticket y descuenta del stock los repuestos usados.
// @Tags         repairs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RepairRequest  true  "Datos del ticket"
// @Success      201   {object}  dto.RepairResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/repairs [post]
func (h *RepairHandler) Create(c *fiber.Ctx) error {
	var in dto.RepairRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar ticket
// @Description  Ajusta el stock por la diferencia de repuestos. Un cambio de estado
// @Description  fuera del flujo habitual se acepta y se informa en "warning".
// @Tags         repairs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ticket"
// @Param        body  body  dto.RepairRequest  true  "Datos del ticket"
// @Success      200   {object}  dto.RepairResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/repairs/{id} [put]
func (h *RepairHandler) Update(c *fiber.Ctx) error {
	var in dto.RepairRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt ticket en PDF (a4 | pos).
// GET /api/repairs/:id/receipt
func (h *RepairHandler) Receipt(c *fiber.Ctx) error {
	body, name, err := h.uc.Receipt(c.UserContext(), c.Params("id"), c.Query("mode"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimePDF, name, body)
}
