package pos

import (
	"context"
	"strings"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// ProductUseCase catálogo: búsqueda, alta, edición y baja. El stock solo cambia por
// ventas, compras y reparaciones; la edición nunca lo toca.
type ProductUseCase struct {
	core Core
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(core Core) *ProductUseCase {
	return &ProductUseCase{core: core}
}

// List busca por nombre, código de barras, SKU o marca (sin distinguir mayúsculas).
func (uc *ProductUseCase) List(filter dto.ProductFilter) dto.ProductListResponse {
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	var matched []entity.Product
	for _, p := range uc.core.snapshot().Products {
		if q == "" || matchesProduct(p, q) {
			matched = append(matched, p)
		}
	}
	items, page := paginate(matched, filter.PageRequest)
	return dto.ProductListResponse{Items: toProductResponses(items), Page: page}
}

func matchesProduct(p entity.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Barcode), q) ||
		strings.Contains(strings.ToLower(p.SKU), q) ||
		strings.Contains(strings.ToLower(p.Brand), q)
}

// GetByID devuelve un producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, ok := uc.core.snapshot().ProductByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// GetByBarcode resuelve un código escaneado o tecleado.
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	p, ok := uc.core.snapshot().ProductByBarcode(strings.TrimSpace(barcode))
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// Create da de alta un producto con el stock inicial indicado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	now := uc.core.now()
	ids := uc.core.IDs
	if ids == nil {
		ids = ledger.NewID
	}
	p := entity.Product{
		ID:            ids(),
		Name:          strings.TrimSpace(in.Name),
		Barcode:       strings.TrimSpace(in.Barcode),
		SKU:           strings.TrimSpace(in.SKU),
		Category:      firstNonBlank(in.Category, ledger.DefaultCategory),
		Brand:         firstNonBlank(in.Brand, ledger.DefaultBrand),
		CostPrice:     in.CostPrice,
		SalePrice:     in.SalePrice,
		StockQty:      in.StockQty,
		MinStockAlert: ledger.DefaultMinStockAlert,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.MinStockAlert != nil {
		p.MinStockAlert = *in.MinStockAlert
	}
	if err := uc.core.apply(ctx, "product.create", []ledger.Intent{ledger.CreateProduct{Product: p}}); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Update edita los datos de catálogo. Stock y fecha de alta se conservan.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	current, ok := uc.core.snapshot().ProductByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	p := current
	p.Name = strings.TrimSpace(in.Name)
	p.Barcode = strings.TrimSpace(in.Barcode)
	p.SKU = strings.TrimSpace(in.SKU)
	p.Category = firstNonBlank(in.Category, ledger.DefaultCategory)
	p.Brand = firstNonBlank(in.Brand, ledger.DefaultBrand)
	p.CostPrice = in.CostPrice
	p.SalePrice = in.SalePrice
	if in.MinStockAlert != nil {
		p.MinStockAlert = *in.MinStockAlert
	}
	p.UpdatedAt = uc.core.now()
	if err := uc.core.apply(ctx, "product.update", []ledger.Intent{ledger.UpdateProduct{Product: p}}); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Delete da de baja el producto. Las ventas históricas conservan su nombre y costo capturados.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, ok := uc.core.snapshot().ProductByID(id); !ok {
		return domain.ErrNotFound
	}
	return uc.core.apply(ctx, "product.delete", []ledger.Intent{ledger.DeleteProduct{ProductID: id}})
}

func validateProduct(in dto.ProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewValidationError(domain.ErrInvalidInput, "el nombre del producto es obligatorio")
	}
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() {
		return domain.NewValidationError(domain.ErrInvalidInput, "los precios no pueden ser negativos")
	}
	if in.StockQty < 0 {
		return domain.NewValidationError(domain.ErrInvalidInput, "el stock no puede ser negativo")
	}
	return nil
}

func firstNonBlank(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
