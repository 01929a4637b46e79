package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/application/pos"
)

// POSHandler carrito de venta del operador, cobro y recibos.
type POSHandler struct {
	uc *pos.POSUseCase
}

// NewPOSHandler construye el handler.
func NewPOSHandler(uc *pos.POSUseCase) *POSHandler {
	return &POSHandler{uc: uc}
}

// Cart carrito en curso.
// GET /api/pos/cart
func (h *POSHandler) Cart(c *fiber.Ctx) error {
	out, err := h.uc.Cart(c.UserContext(), GetUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar producto al carrito (por ID o código de barras)
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartLineRequest  true  "product_id o barcode"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/cart/lines [post]
func (h *POSHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddCartLineRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddLine(c.UserContext(), GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateLine cantidad o precio de una línea.
// PATCH /api/pos/cart/lines/:productId
func (h *POSHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateCartLineRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateLine(c.UserContext(), GetUser(c), c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine quita la línea del carrito.
// DELETE /api/pos/cart/lines/:productId
func (h *POSHandler) RemoveLine(c *fiber.Ctx) error {
	out, err := h.uc.RemoveLine(c.UserContext(), GetUser(c), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear vacía el carrito.
// DELETE /api/pos/cart
func (h *POSHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.UserContext(), GetUser(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Cobrar el carrito
// @Description  Registra la venta, descuenta stock y vacía el carrito. Si la
// @Description  persistencia falla el carrito se conserva.
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutSaleRequest  true  "Cliente y forma de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pos/checkout [post]
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutSaleRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Checkout(c.UserContext(), GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSales historial de ventas, la más reciente primero.
// GET /api/sales
func (h *POSHandler) ListSales(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	items, meta := h.uc.ListSales(page)
	return c.JSON(dto.SaleListResponse{Items: items, Page: meta})
}

// Receipt godoc
// @Summary      Recibo de venta en PDF
// @Tags         pos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "ID de la venta"
// @Param        mode  query  string  false  "a4 | pos"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *POSHandler) Receipt(c *fiber.Ctx) error {
	body, name, err := h.uc.Receipt(c.UserContext(), c.Params("id"), c.Query("mode"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimePDF, name, body)
}
