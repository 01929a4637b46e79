package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/application/pos"
)

// PurchaseHandler carrito de compra a proveedor (solo admin).
type PurchaseHandler struct {
	uc *pos.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *pos.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Cart GET /api/purchases/cart
func (h *PurchaseHandler) Cart(c *fiber.Ctx) error {
	out, err := h.uc.Cart(c.UserContext(), GetUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddLine producto existente al costo actual.
// POST /api/purchases/cart/lines
func (h *PurchaseHandler) AddLine(c *fiber.Ctx) error {
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

// AddNewLine producto que se crea en el catálogo al confirmar la compra.
// POST /api/purchases/cart/new-lines
func (h *PurchaseHandler) AddNewLine(c *fiber.Ctx) error {
	var in dto.NewProductLineRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddNewLine(c.UserContext(), GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateLine PATCH /api/purchases/cart/lines/:productId
func (h *PurchaseHandler) UpdateLine(c *fiber.Ctx) error {
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

// RemoveLine DELETE /api/purchases/cart/lines/:productId
func (h *PurchaseHandler) RemoveLine(c *fiber.Ctx) error {
	out, err := h.uc.RemoveLine(c.UserContext(), GetUser(c), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear DELETE /api/purchases/cart
func (h *PurchaseHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.UserContext(), GetUser(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Confirmar compra
// @Description  Suma stock, recalcula el costo promedio ponderado y crea los productos nuevos.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutPurchaseRequest  true  "Proveedor"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/purchases/checkout [post]
func (h *PurchaseHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutPurchaseRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Checkout(c.UserContext(), GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/purchases
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	items, meta := h.uc.List(page)
	return c.JSON(dto.PurchaseListResponse{Items: items, Page: meta})
}
