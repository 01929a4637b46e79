package pos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

func TestPurchase_CheckoutCostoPromedioYProductoNuevo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &entity.Snapshot{Products: []entity.Product{product("p1", 10, "100", "150")}})
	uc := pos.NewPurchaseUseCase(f.core, f.carts)

	cart, err := uc.AddLine(ctx, admin, dto.AddCartLineRequest{ProductID: "p1"})
	require.NoError(t, err)
	assertDec(t, "100", cart.Lines[0].Price)

	_, err = uc.UpdateLine(ctx, admin, "p1", dto.UpdateCartLineRequest{Qty: intPtr(10), Price: decPtr("120")})
	require.NoError(t, err)

	cart, err = uc.AddNewLine(ctx, admin, dto.NewProductLineRequest{Name: "Cargador USB-C", Barcode: "889", Qty: 4, CostPrice: dec("8"), SalePrice: dec("15")})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.True(t, cart.Lines[1].IsNew)
	assertDec(t, "1232", cart.GrandTotal)

	purchase, err := uc.Checkout(ctx, admin, dto.CheckoutPurchaseRequest{Supplier: "Distribuidora Norte"})
	require.NoError(t, err)
	assertDec(t, "1232", purchase.GrandTotal)
	require.Len(t, purchase.Items, 2)

	p1 := f.product(t, "p1")
	assert.Equal(t, 20, p1.StockQty)
	assertDec(t, "110", p1.CostPrice)

	created, ok := f.core.Snapshots.Current().ProductByBarcode("889")
	require.True(t, ok)
	assert.Equal(t, purchase.Items[1].ProductID, created.ID)
	assert.Equal(t, 4, created.StockQty)
	assert.Equal(t, ledger.DefaultCategory, created.Category)

	list, page := uc.List(dto.PageRequest{})
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, purchase.ID, list[0].ID)
}

func TestPurchase_SinProveedor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &entity.Snapshot{Products: []entity.Product{product("p1", 0, "100", "150")}})
	uc := pos.NewPurchaseUseCase(f.core, f.carts)

	_, err := uc.AddLine(ctx, admin, dto.AddCartLineRequest{ProductID: "p1"})
	require.NoError(t, err, "las compras no tienen tope de stock")

	_, err = uc.Checkout(ctx, admin, dto.CheckoutPurchaseRequest{Supplier: "  "})
	assert.ErrorIs(t, err, domain.ErrSupplierRequired)

	cart, err := uc.Cart(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestPurchase_PrecioDeVentaEnLinea(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &entity.Snapshot{Products: []entity.Product{product("p1", 1, "100", "150")}})
	uc := pos.NewPurchaseUseCase(f.core, f.carts)

	_, err := uc.AddLine(ctx, admin, dto.AddCartLineRequest{ProductID: "p1"})
	require.NoError(t, err)
	cart, err := uc.UpdateLine(ctx, admin, "p1", dto.UpdateCartLineRequest{SalePrice: decPtr("180")})
	require.NoError(t, err)
	assertDec(t, "180", cart.Lines[0].SalePrice)

	cart, err = uc.RemoveLine(ctx, admin, "p1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}
