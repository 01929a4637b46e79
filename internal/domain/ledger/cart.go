package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// CartKind distingue carritos de venta (con techo de stock) y de compra (sin techo).
type CartKind string

const (
	CartSale     CartKind = "sale"
	CartPurchase CartKind = "purchase"
)

// Catalog búsqueda de productos por ID (entity.Snapshot la implementa).
type Catalog interface {
	ProductByID(id string) (entity.Product, bool)
}

// CartLine línea en curso. Invariante: Total == Qty * Price después de cada operación.
// En ventas Price es el precio de venta y CostPrice el costo capturado; en compras Price
// es el costo de entrada y SalePrice el precio de venta a registrar.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Barcode   string          `json:"barcode,omitempty"`
	IsNew     bool            `json:"is_new,omitempty"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Total     decimal.Decimal `json:"total"`
}

func (l *CartLine) recompute() {
	l.Total = l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Cart conjunto transitorio de líneas, a lo sumo una por producto.
type Cart struct {
	Kind  CartKind   `json:"kind"`
	Lines []CartLine `json:"lines"`
}

// NewSaleCart carrito vacío de caja.
func NewSaleCart() *Cart { return &Cart{Kind: CartSale, Lines: []CartLine{}} }

// NewPurchaseCart carrito vacío de compras.
func NewPurchaseCart() *Cart { return &Cart{Kind: CartPurchase, Lines: []CartLine{}} }

func (c *Cart) index(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Line devuelve la línea del producto, si existe.
func (c *Cart) Line(productID string) (CartLine, bool) {
	if i := c.index(productID); i >= 0 {
		return c.Lines[i], true
	}
	return CartLine{}, false
}

// IsEmpty indica si no hay líneas.
func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// Clear vacía el carrito.
func (c *Cart) Clear() { c.Lines = []CartLine{} }

// AddLine agrega una unidad del producto. Si la línea existe incrementa la cantidad;
// en ventas rechaza cuando la nueva cantidad supera el stock.
func (c *Cart) AddLine(p entity.Product) error {
	if i := c.index(p.ID); i >= 0 {
		next := c.Lines[i].Qty + 1
		if c.Kind == CartSale && next > p.StockQty {
			return domain.InsufficientStock(p.StockQty, next)
		}
		c.Lines[i].Qty = next
		c.Lines[i].recompute()
		return nil
	}
	if c.Kind == CartSale && p.StockQty <= 0 {
		return domain.InsufficientStock(p.StockQty, 1)
	}
	line := CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Barcode:   p.Barcode,
		Qty:       1,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
	}
	if c.Kind == CartSale {
		line.Price = p.SalePrice
	} else {
		line.Price = p.CostPrice
	}
	line.recompute()
	c.Lines = append(c.Lines, line)
	return nil
}

// NewProductLine datos de un producto que aún no existe en el catálogo (solo compras).
type NewProductLine struct {
	Name      string
	Barcode   string
	Qty       int
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
}

// AddNewProductLine agrega una línea con ID temporal NEW-xxxxx; el producto se crea al confirmar.
func (c *Cart) AddNewProductLine(in NewProductLine, ids IDGenerator) (CartLine, error) {
	if c.Kind != CartPurchase {
		return CartLine{}, domain.NewValidationError(domain.ErrInvalidInput, "solo las compras admiten productos nuevos")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return CartLine{}, domain.NewValidationError(domain.ErrInvalidInput, "el nombre del producto es obligatorio")
	}
	if in.Qty < 1 {
		return CartLine{}, invalidQty(in.Qty)
	}
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() {
		return CartLine{}, invalidPrice()
	}
	id, err := c.tempProductID(orNewID(ids))
	if err != nil {
		return CartLine{}, err
	}
	line := CartLine{
		ProductID: id,
		Name:      name,
		Barcode:   strings.TrimSpace(in.Barcode),
		IsNew:     true,
		Qty:       in.Qty,
		Price:     in.CostPrice,
		CostPrice: in.CostPrice,
		SalePrice: in.SalePrice,
	}
	line.recompute()
	c.Lines = append(c.Lines, line)
	return line, nil
}

// Intentos de generar un ID temporal libre antes de rendirse.
const tempIDAttempts = 8

// tempProductID NEW- más los primeros 5 caracteres del generador; si ya está en el carrito
// usa el ID completo y, si también choca, pide otro.
func (c *Cart) tempProductID(gen IDGenerator) (string, error) {
	for i := 0; i < tempIDAttempts; i++ {
		raw := gen()
		short := raw
		if len(short) > 5 {
			short = short[:5]
		}
		for _, cand := range []string{short, raw} {
			id := entity.NewProductIDPrefix + cand
			if cand != "" && c.index(id) < 0 {
				return id, nil
			}
		}
	}
	return "", domain.NewValidationError(domain.ErrDuplicate, "no se pudo asignar un ID temporal libre")
}

// SetLineQuantity fija la cantidad de una línea. En ventas rechaza qty > stock del producto.
func (c *Cart) SetLineQuantity(productID string, qty int, catalog Catalog) error {
	i := c.index(productID)
	if i < 0 {
		return domain.NewValidationError(domain.ErrNotFound, "el producto %s no está en el carrito", productID)
	}
	if qty < 1 {
		return invalidQty(qty)
	}
	if c.Kind == CartSale {
		p, ok := lookup(catalog, productID)
		if !ok {
			return domain.NewValidationError(domain.ErrNotFound, "el producto %s ya no existe en el catálogo", productID)
		}
		if qty > p.StockQty {
			return domain.InsufficientStock(p.StockQty, qty)
		}
	}
	c.Lines[i].Qty = qty
	c.Lines[i].recompute()
	return nil
}

// SetLinePrice modifica el precio unitario (descuento manual en caja o costo en compras).
func (c *Cart) SetLinePrice(productID string, price decimal.Decimal) error {
	i := c.index(productID)
	if i < 0 {
		return domain.NewValidationError(domain.ErrNotFound, "el producto %s no está en el carrito", productID)
	}
	if price.IsNegative() {
		return invalidPrice()
	}
	c.Lines[i].Price = price
	if c.Kind == CartPurchase {
		c.Lines[i].CostPrice = price
	}
	c.Lines[i].recompute()
	return nil
}

// SetLineSalePrice fija el precio de venta a registrar para una línea de compra.
func (c *Cart) SetLineSalePrice(productID string, price decimal.Decimal) error {
	if c.Kind != CartPurchase {
		return domain.NewValidationError(domain.ErrInvalidInput, "solo las compras admiten precio de venta por línea")
	}
	i := c.index(productID)
	if i < 0 {
		return domain.NewValidationError(domain.ErrNotFound, "el producto %s no está en el carrito", productID)
	}
	if price.IsNegative() {
		return invalidPrice()
	}
	c.Lines[i].SalePrice = price
	return nil
}

// RemoveLine elimina la línea sin condiciones.
func (c *Cart) RemoveLine(productID string) {
	if i := c.index(productID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// SubTotal suma de los totales de línea.
func (c *Cart) SubTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Total)
	}
	return total
}

// GrandTotal hoy igual a SubTotal: ningún flujo aplica descuento global ni impuesto.
func (c *Cart) GrandTotal() decimal.Decimal { return c.SubTotal() }

// SaleMeta datos de cabecera para confirmar una venta.
type SaleMeta struct {
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	UserID        string
}

// FinalizeSale produce la venta inmutable, los intents de alta y descuento de stock,
// y vacía el carrito. No hay rollback si el store falla después.
func (c *Cart) FinalizeSale(meta SaleMeta, clock Clock, ids IDGenerator) (entity.Sale, []Intent, error) {
	if c.Kind != CartSale {
		return entity.Sale{}, nil, domain.NewValidationError(domain.ErrInvalidInput, "el carrito no es de venta")
	}
	if c.IsEmpty() {
		return entity.Sale{}, nil, domain.ErrEmptyCart
	}
	method := meta.PaymentMethod
	if method == "" {
		method = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(method) {
		return entity.Sale{}, nil, domain.NewValidationError(domain.ErrInvalidInput, "método de pago no soportado: %s", method)
	}

	now := orNow(clock)()
	items := make([]entity.SaleItem, 0, len(c.Lines))
	intents := make([]Intent, 0, len(c.Lines)+1)
	for _, l := range c.Lines {
		cost := l.CostPrice
		items = append(items, entity.SaleItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Qty:       l.Qty,
			Price:     l.Price,
			CostPrice: &cost,
			Total:     l.Total,
		})
	}
	subTotal := c.SubTotal()
	sale := entity.Sale{
		ID:            orNewID(ids)(),
		InvoiceNo:     DocumentNumber("INV", now),
		CustomerName:  strings.TrimSpace(meta.CustomerName),
		CustomerPhone: strings.TrimSpace(meta.CustomerPhone),
		Items:         items,
		SubTotal:      subTotal,
		TotalDiscount: decimal.Zero,
		Tax:           decimal.Zero,
		GrandTotal:    subTotal,
		PaymentMethod: method,
		CreatedAt:     now,
		UserID:        meta.UserID,
	}
	intents = append(intents, CreateSale{Sale: sale})
	for _, it := range items {
		intents = append(intents, UpdateProductStock{ProductID: it.ProductID, Delta: -it.Qty})
	}
	c.Clear()
	return sale, intents, nil
}

// PurchaseMeta datos del proveedor para confirmar una compra.
type PurchaseMeta struct {
	Supplier  string
	Phone     string
	InvoiceNo string // número de factura del proveedor; vacío = PUR-xxxxxx
	UserID    string
}

// FinalizePurchase produce la compra, los intents de alta de productos nuevos, aumento de
// stock y nuevo costo promedio, y vacía el carrito.
func (c *Cart) FinalizePurchase(meta PurchaseMeta, catalog Catalog, clock Clock, ids IDGenerator) (entity.Purchase, []Intent, error) {
	if c.Kind != CartPurchase {
		return entity.Purchase{}, nil, domain.NewValidationError(domain.ErrInvalidInput, "el carrito no es de compra")
	}
	if c.IsEmpty() {
		return entity.Purchase{}, nil, domain.ErrEmptyCart
	}
	supplier := strings.TrimSpace(meta.Supplier)
	if supplier == "" {
		return entity.Purchase{}, nil, &domain.ValidationError{Err: domain.ErrSupplierRequired}
	}
	gen := orNewID(ids)
	now := orNow(clock)()

	items := make([]entity.PurchaseItem, 0, len(c.Lines))
	var productIntents []Intent
	for _, l := range c.Lines {
		item := entity.PurchaseItem{
			ProductID: l.ProductID,
			IsNew:     l.IsNew,
			Name:      l.Name,
			Barcode:   l.Barcode,
			Qty:       l.Qty,
			CostPrice: l.Price,
			SalePrice: l.SalePrice,
			Total:     l.Total,
		}
		if l.IsNew {
			item.ProductID = gen()
			productIntents = append(productIntents, CreateProduct{Product: entity.Product{
				ID:            item.ProductID,
				Name:          l.Name,
				Barcode:       l.Barcode,
				Category:      DefaultCategory,
				Brand:         DefaultBrand,
				CostPrice:     l.Price,
				SalePrice:     l.SalePrice,
				StockQty:      l.Qty,
				MinStockAlert: DefaultMinStockAlert,
				CreatedAt:     now,
				UpdatedAt:     now,
			}})
		} else {
			p, ok := lookup(catalog, l.ProductID)
			if !ok {
				return entity.Purchase{}, nil, domain.NewValidationError(domain.ErrNotFound, "el producto %s ya no existe en el catálogo", l.Name)
			}
			productIntents = append(productIntents, UpdateProductStock{ProductID: p.ID, Delta: l.Qty})
			if !l.Price.Equal(p.CostPrice) {
				productIntents = append(productIntents, UpdateProductCost{
					ProductID: p.ID,
					CostPrice: WeightedAverageCost(p.StockQty, p.CostPrice, l.Qty, l.Price),
				})
			}
		}
		items = append(items, item)
	}

	invoiceNo := strings.TrimSpace(meta.InvoiceNo)
	if invoiceNo == "" {
		invoiceNo = DocumentNumber("PUR", now)
	}
	purchase := entity.Purchase{
		ID:         gen(),
		InvoiceNo:  invoiceNo,
		Supplier:   supplier,
		Phone:      strings.TrimSpace(meta.Phone),
		Items:      items,
		GrandTotal: c.SubTotal(),
		CreatedAt:  now,
		UserID:     meta.UserID,
	}
	intents := append([]Intent{CreatePurchase{Purchase: purchase}}, productIntents...)
	c.Clear()
	return purchase, intents, nil
}

func lookup(catalog Catalog, id string) (entity.Product, bool) {
	if catalog == nil {
		return entity.Product{}, false
	}
	return catalog.ProductByID(id)
}

func invalidQty(qty int) error {
	return domain.NewValidationError(domain.ErrInvalidInput, "la cantidad debe ser al menos 1 (recibido %d)", qty)
}

func invalidPrice() error {
	return domain.NewValidationError(domain.ErrInvalidInput, "el precio no puede ser negativo")
}
