package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// InventoryValue capital inmovilizado en existencias: Σ CostPrice * StockQty sobre todo el catálogo.
func InventoryValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.StockQty))))
	}
	return total
}

// IsLowStock StockQty <= MinStockAlert. Sin histéresis.
func IsLowStock(p entity.Product) bool {
	return p.StockQty <= p.MinStockAlert
}

// LowStock productos en alerta, en el orden del catálogo.
func LowStock(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if IsLowStock(p) {
			out = append(out, p)
		}
	}
	return out
}

// WeightedAverageCost costo promedio ponderado tras una entrada de mercadería.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Con stock actual negativo o nulo se toma el costo de la entrada.
func WeightedAverageCost(stock int, currentCost decimal.Decimal, qtyIn int, costIn decimal.Decimal) decimal.Decimal {
	if stock < 0 {
		stock = 0
	}
	sum := stock + qtyIn
	if sum <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(int64(stock)).Mul(currentCost).Add(decimal.NewFromInt(int64(qtyIn)).Mul(costIn))
	return num.Div(decimal.NewFromInt(int64(sum))).Round(2)
}
