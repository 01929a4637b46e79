package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Intent mutación solicitada al store externo. El motor solo las produce; aplicarlas,
// reintentar y notificar el nuevo snapshot es responsabilidad de la capa de persistencia.
type Intent interface {
	Kind() string
	intent()
}

// Tipos de intent.
const (
	KindCreateSale         = "create_sale"
	KindCreatePurchase     = "create_purchase"
	KindUpdateProductStock = "update_product_stock"
	KindUpdateProductCost  = "update_product_cost"
	KindCreateProduct      = "create_product"
	KindUpdateProduct      = "update_product"
	KindDeleteProduct      = "delete_product"
	KindCreateExpense      = "create_expense"
	KindUpsertRepairTicket = "upsert_repair_ticket"
)

// CreateSale registra una venta confirmada.
type CreateSale struct{ Sale entity.Sale }

// CreatePurchase registra una compra a proveedor.
type CreatePurchase struct{ Purchase entity.Purchase }

// UpdateProductStock suma Delta (negativo en ventas) al stock del producto.
type UpdateProductStock struct {
	ProductID string
	Delta     int
}

// UpdateProductCost fija el nuevo costo de catálogo tras una compra.
type UpdateProductCost struct {
	ProductID string
	CostPrice decimal.Decimal
}

// CreateProduct alta de producto en el catálogo.
type CreateProduct struct{ Product entity.Product }

// UpdateProduct edición de datos de catálogo.
type UpdateProduct struct{ Product entity.Product }

// DeleteProduct baja definitiva de un producto.
type DeleteProduct struct{ ProductID string }

// CreateExpense registra un gasto.
type CreateExpense struct{ Expense entity.Expense }

// UpsertRepairTicket crea o reemplaza un ticket de reparación.
type UpsertRepairTicket struct{ Ticket entity.RepairTicket }

func (CreateSale) Kind() string         { return KindCreateSale }
func (CreatePurchase) Kind() string     { return KindCreatePurchase }
func (UpdateProductStock) Kind() string { return KindUpdateProductStock }
func (UpdateProductCost) Kind() string  { return KindUpdateProductCost }
func (CreateProduct) Kind() string      { return KindCreateProduct }
func (UpdateProduct) Kind() string      { return KindUpdateProduct }
func (DeleteProduct) Kind() string      { return KindDeleteProduct }
func (CreateExpense) Kind() string      { return KindCreateExpense }
func (UpsertRepairTicket) Kind() string { return KindUpsertRepairTicket }

func (CreateSale) intent()         {}
func (CreatePurchase) intent()     {}
func (UpdateProductStock) intent() {}
func (UpdateProductCost) intent()  {}
func (CreateProduct) intent()      {}
func (UpdateProduct) intent()      {}
func (DeleteProduct) intent()      {}
func (CreateExpense) intent()      {}
func (UpsertRepairTicket) intent() {}
