package pos

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

// PurchaseUseCase facturas de proveedor: carrito de compra, alta de productos nuevos y
// actualización de costo promedio ponderado al confirmar.
type PurchaseUseCase struct {
	core  Core
	carts repository.CartStore
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(core Core, carts repository.CartStore) *PurchaseUseCase {
	return &PurchaseUseCase{core: core, carts: carts}
}

// Cart devuelve el carrito de compra del operador.
func (uc *PurchaseUseCase) Cart(ctx context.Context, user entity.User) (*dto.CartResponse, error) {
	cart, err := uc.carts.Get(ctx, user.CartOwner(), ledger.CartPurchase)
	if err != nil {
		return nil, err
	}
	out := toCartResponse(cart)
	return &out, nil
}

// AddLine agrega un producto existente al costo actual de catálogo. No hay tope de stock.
func (uc *PurchaseUseCase) AddLine(ctx context.Context, user entity.User, in dto.AddCartLineRequest) (*dto.CartResponse, error) {
	p, err := resolveProduct(uc.core.snapshot(), in)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, user, func(c *ledger.Cart) error { return c.AddLine(p) })
}

// AddNewLine agrega un producto que todavía no existe en el catálogo.
func (uc *PurchaseUseCase) AddNewLine(ctx context.Context, user entity.User, in dto.NewProductLineRequest) (*dto.CartResponse, error) {
	return uc.mutate(ctx, user, func(c *ledger.Cart) error {
		_, err := c.AddNewProductLine(ledger.NewProductLine{
			Name:      in.Name,
			Barcode:   in.Barcode,
			Qty:       in.Qty,
			CostPrice: in.CostPrice,
			SalePrice: in.SalePrice,
		}, uc.core.IDs)
		return err
	})
}

// UpdateLine cambia cantidad, costo de entrada y/o precio de venta de una línea.
func (uc *PurchaseUseCase) UpdateLine(ctx context.Context, user entity.User, productID string, in dto.UpdateCartLineRequest) (*dto.CartResponse, error) {
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
		if in.SalePrice != nil {
			if err := c.SetLineSalePrice(productID, *in.SalePrice); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveLine quita la línea del carrito.
func (uc *PurchaseUseCase) RemoveLine(ctx context.Context, user entity.User, productID string) (*dto.CartResponse, error) {
	return uc.mutate(ctx, user, func(c *ledger.Cart) error {
		c.RemoveLine(productID)
		return nil
	})
}

// Clear vacía el carrito de compra.
func (uc *PurchaseUseCase) Clear(ctx context.Context, user entity.User) error {
	unlock, err := uc.carts.Lock(ctx, user.CartOwner(), ledger.CartPurchase)
	if err != nil {
		return err
	}
	defer unlock()
	return uc.carts.Delete(ctx, user.CartOwner(), ledger.CartPurchase)
}

func (uc *PurchaseUseCase) mutate(ctx context.Context, user entity.User, fn func(*ledger.Cart) error) (*dto.CartResponse, error) {
	unlock, err := uc.carts.Lock(ctx, user.CartOwner(), ledger.CartPurchase)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := uc.carts.Get(ctx, user.CartOwner(), ledger.CartPurchase)
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

// Checkout confirma la compra: registra la factura, suma existencias, recalcula costos y
// crea los productos nuevos.
func (uc *PurchaseUseCase) Checkout(ctx context.Context, user entity.User, in dto.CheckoutPurchaseRequest) (*dto.PurchaseResponse, error) {
	unlock, err := uc.carts.Lock(ctx, user.CartOwner(), ledger.CartPurchase)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := uc.carts.Get(ctx, user.CartOwner(), ledger.CartPurchase)
	if err != nil {
		return nil, err
	}
	purchase, intents, err := cart.FinalizePurchase(ledger.PurchaseMeta{
		Supplier:  strings.TrimSpace(in.Supplier),
		Phone:     NormalizePhone(in.Phone, uc.core.Region),
		InvoiceNo: strings.TrimSpace(in.InvoiceNo),
		UserID:    user.ID,
	}, uc.core.snapshot(), uc.core.Clock, uc.core.IDs)
	if err != nil {
		return nil, err
	}
	if err := uc.core.apply(ctx, "purchase.checkout", intents); err != nil {
		return nil, err
	}
	if err := uc.carts.Delete(ctx, user.CartOwner(), ledger.CartPurchase); err != nil {
		uc.core.logger().Warn().Err(err).Str("user", user.ID).Msg("no se pudo vaciar el carrito de compra")
	}
	uc.core.logger().Info().
		Str("invoice", purchase.InvoiceNo).
		Str("supplier", purchase.Supplier).
		Str("total", purchase.GrandTotal.StringFixed(2)).
		Msg("compra registrada")
	out := toPurchaseResponse(purchase)
	return &out, nil
}

// List compras, la más reciente primero.
func (uc *PurchaseUseCase) List(page dto.PageRequest) ([]dto.PurchaseResponse, dto.PageResponse) {
	items, meta := paginate(sortedPurchases(uc.core.snapshot().Purchases), page)
	out := make([]dto.PurchaseResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPurchaseResponse(p))
	}
	return out, meta
}

// sortedPurchases compras, la más reciente primero.
func sortedPurchases(ps []entity.Purchase) []entity.Purchase {
	out := make([]entity.Purchase, len(ps))
	copy(out, ps)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
