package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

func TestInventoryValue(t *testing.T) {
	products := []entity.Product{
		product("a", 3, "10.50", "20"),
		product("b", 0, "99", "150"),
		product("c", 2, "4", "8"),
	}
	assertDec(t, "39.5", ledger.InventoryValue(products))
	assertDec(t, "0", ledger.InventoryValue(nil))
}

func TestLowStock_Limite(t *testing.T) {
	enLimite := entity.Product{ID: "igual", StockQty: 2, MinStockAlert: 2}
	sobre := entity.Product{ID: "sobre", StockQty: 3, MinStockAlert: 2}
	agotado := entity.Product{ID: "agotado", StockQty: 0, MinStockAlert: 2}

	assert.True(t, ledger.IsLowStock(enLimite), "stock igual al mínimo entra en alerta")
	assert.False(t, ledger.IsLowStock(sobre))

	low := ledger.LowStock([]entity.Product{enLimite, sobre, agotado})
	require.Len(t, low, 2)
	assert.Equal(t, "igual", low[0].ID, "se conserva el orden del catálogo")
	assert.Equal(t, "agotado", low[1].ID)
}

func TestWeightedAverageCost(t *testing.T) {
	tests := []struct {
		name   string
		stock  int
		cost   string
		qtyIn  int
		costIn string
		want   string
	}{
		{"promedio simple", 10, "100", 10, "120", "110"},
		{"sin stock previo", 0, "100", 5, "80", "80"},
		{"stock negativo se trata como cero", -4, "100", 5, "80", "80"},
		{"redondeo a dos decimales", 3, "10", 1, "11", "10.25"},
		{"sin unidades", 0, "100", 0, "80", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.WeightedAverageCost(tt.stock, dec(tt.cost), tt.qtyIn, dec(tt.costIn))
			assertDec(t, tt.want, got)
		})
	}
}
