package pos

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

// POSUseCase caja: carrito de venta por operador, confirmación y recibos.
type POSUseCase struct {
	core     Core
	carts    repository.CartStore
	renderer DocumentRenderer
}

// NewPOSUseCase construye el caso de uso. renderer puede ser nil (sin impresión).
func NewPOSUseCase(core Core, carts repository.CartStore, renderer DocumentRenderer) *POSUseCase {
	return &POSUseCase{core: core, carts: carts, renderer: renderer}
}

// Cart devuelve el carrito de venta del operador.
func (uc *POSUseCase) Cart(ctx context.Context, user entity.User) (*dto.CartResponse, error) {
	cart, err := uc.carts.Get(ctx, user.CartOwner(), ledger.CartSale)
	if err != nil {
		return nil, err
	}
	out := toCartResponse(cart)
	return &out, nil
}

// AddLine agrega una unidad del producto (por ID o código de barras); si ya está en el
// carrito incrementa su cantidad respetando el stock disponible.
func (uc *POSUseCase) AddLine(ctx context.Context, user entity.User, in dto.AddCartLineRequest) (*dto.CartResponse, error) {
	p, err := resolveProduct(uc.core.snapshot(), in)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, user, func(c *ledger.Cart) error { return c.AddLine(p) })
}

// UpdateLine cambia cantidad y/o precio de una línea.
func (uc *POSUseCase) UpdateLine(ctx context.Context, user entity.User, productID string, in dto.UpdateCartLineRequest) (*dto.CartResponse, error) {
	snap := uc.core.snapshot()
	return uc.mutate(ctx, user, func(c *ledger.Cart) error {
		if in.Qty != nil {
			if err := c.SetLineQuantity(productID, *in.Qty, snap); err != nil {
				return err
			}
		}
		if in.Price != nil {
			if err := c.SetLinePrice(productID, *in.Price); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveLine quita la línea del carrito.
func (uc *POSUseCase) RemoveLine(ctx context.Context, user entity.User, productID string) (*dto.CartResponse, error) {
	return uc.mutate(ctx, user, func(c *ledger.Cart) error {
		c.RemoveLine(productID)
		return nil
	})
}

// Clear vacía el carrito.
func (uc *POSUseCase) Clear(ctx context.Context, user entity.User) error {
	unlock, err := uc.carts.Lock(ctx, user.CartOwner(), ledger.CartSale)
	if err != nil {
		return err
	}
	defer unlock()
	return uc.carts.Delete(ctx, user.CartOwner(), ledger.CartSale)
}

func (uc *POSUseCase) mutate(ctx context.Context, user entity.User, fn func(*ledger.Cart) error) (*dto.CartResponse, error) {
	unlock, err := uc.carts.Lock(ctx, user.CartOwner(), ledger.CartSale)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := uc.carts.Get(ctx, user.CartOwner(), ledger.CartSale)
	if err != nil {
		return nil, err
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	if err := uc.carts.Save(ctx, user.CartOwner(), cart); err != nil {
		return nil, err
	}
	out := toCartResponse(cart)
	return &out, nil
}

// Checkout confirma la venta: revalida cantidades contra el stock actual, emite la venta
// y un descuento de stock por línea, y vacía el carrito. Si la aplicación de intents falla
// el carrito se conserva para que el operador revise la venta.
func (uc *POSUseCase) Checkout(ctx context.Context, user entity.User, in dto.CheckoutSaleRequest) (*dto.SaleResponse, error) {
	unlock, err := uc.carts.Lock(ctx, user.CartOwner(), ledger.CartSale)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := uc.carts.Get(ctx, user.CartOwner(), ledger.CartSale)
	if err != nil {
		return nil, err
	}
	snap := uc.core.snapshot()
	// el stock pudo cambiar desde que se armó el carrito
	for _, l := range cart.Lines {
		if err := cart.SetLineQuantity(l.ProductID, l.Qty, snap); err != nil {
			return nil, err
		}
	}

	sale, intents, err := cart.FinalizeSale(ledger.SaleMeta{
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: NormalizePhone(in.CustomerPhone, uc.core.Region),
		PaymentMethod: in.PaymentMethod,
		UserID:        user.ID,
	}, uc.core.Clock, uc.core.IDs)
	if err != nil {
		return nil, err
	}
	if err := uc.core.apply(ctx, "sale.checkout", intents); err != nil {
		return nil, err
	}
	if err := uc.carts.Delete(ctx, user.CartOwner(), ledger.CartSale); err != nil {
		uc.core.logger().Warn().Err(err).Str("user", user.ID).Msg("no se pudo vaciar el carrito")
	}
	uc.core.logger().Info().
		Str("invoice", sale.InvoiceNo).
		Str("total", sale.GrandTotal.StringFixed(2)).
		Int("items", len(sale.Items)).
		Str("user", user.ID).
		Msg("venta registrada")
	out := toSaleResponse(sale)
	return &out, nil
}

// ListSales ventas, la más reciente primero.
func (uc *POSUseCase) ListSales(page dto.PageRequest) ([]dto.SaleResponse, dto.PageResponse) {
	sales := ledger.RecentSales(uc.core.snapshot().Sales, -1)
	items, meta := paginate(sales, page)
	out := make([]dto.SaleResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toSaleResponse(s))
	}
	return out, meta
}

// Receipt PDF de la venta en formato A4 o rollo térmico.
func (uc *POSUseCase) Receipt(ctx context.Context, saleID, mode string) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", fmt.Errorf("receipt: %w", domain.ErrUnavailable)
	}
	m, err := ParseReceiptMode(mode)
	if err != nil {
		return nil, "", err
	}
	for _, s := range uc.core.snapshot().Sales {
		if s.ID != saleID {
			continue
		}
		data, err := uc.renderer.SaleReceipt(ctx, s, m)
		if err != nil {
			return nil, "", fmt.Errorf("receipt: %w", err)
		}
		return data, fmt.Sprintf("recibo_%s.pdf", s.InvoiceNo), nil
	}
	return nil, "", domain.ErrNotFound
}

// resolveProduct busca por ID y, si no viene, por código de barras.
func resolveProduct(snap *entity.Snapshot, in dto.AddCartLineRequest) (entity.Product, error) {
	if id := strings.TrimSpace(in.ProductID); id != "" {
		if p, ok := snap.ProductByID(id); ok {
			return p, nil
		}
		return entity.Product{}, domain.ErrNotFound
	}
	if p, ok := snap.ProductByBarcode(strings.TrimSpace(in.Barcode)); ok {
		return p, nil
	}
	return entity.Product{}, domain.NewValidationError(domain.ErrNotFound, "no hay producto con el código %q", in.Barcode)
}
