package legacy_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/legacy"
)

const exportJSON = `{
  "products": {
    "-Nb2": {"name": "Pantalla A10", "cost": 30, "salePrice": 55, "qty": 4},
    "-Na1": {"name": "Cable USB", "costPrice": "2.5", "salePrice": 6, "stockQty": 10, "minStockAlert": 0}
  },
  "sales_v2": {
    "-S1": {"invoiceNo": "INV-100001", "createdAt": 1714557600000, "grandTotal": 12,
            "items": [{"productId": "-Na1", "name": "Cable USB", "qty": 2, "price": 6}]}
  },
  "sales": {"-old": {"invoiceNo": "IGNORADA"}},
  "expenses_v2": [{"category": "rent", "amount": 500}],
  "repairs": {"-R1": {"ticketNo": "REP-1", "status": "تم التسليم للعميل", "laborCost": 20, "partsUsed": []}}
}`

func TestParseExport(t *testing.T) {
	snap, err := legacy.ParseExport(strings.NewReader(exportJSON))
	require.NoError(t, err)

	require.Len(t, snap.Products, 2)
	assert.Equal(t, "-Na1", snap.Products[0].ID, "orden por clave push")
	assert.Equal(t, 2, snap.Products[0].MinStockAlert, "cero equivale a ausente")
	assert.Equal(t, "2.5", snap.Products[0].CostPrice.String())
	assert.Equal(t, 4, snap.Products[1].StockQty)
	assert.Equal(t, "30", snap.Products[1].CostPrice.String())

	require.Len(t, snap.Sales, 1, "sales_v2 tiene prioridad sobre sales")
	assert.Equal(t, "INV-100001", snap.Sales[0].InvoiceNo)
	assert.Nil(t, snap.Sales[0].Items[0].CostPrice)
	assert.False(t, snap.Sales[0].CreatedAt.IsZero())

	require.Len(t, snap.Expenses, 1)
	assert.Equal(t, "expenses_v2-0", snap.Expenses[0].ID)

	require.Len(t, snap.Repairs, 1)
	assert.Equal(t, entity.RepairDelivered, snap.Repairs[0].Status)
	assert.Empty(t, snap.Purchases)
}

func TestParseExport_JSONInvalido(t *testing.T) {
	_, err := legacy.ParseExport(strings.NewReader("{no es json"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestParseProductsCSV_Windows1256(t *testing.T) {
	src := "name,barcode,cost,salePrice,qty\nشاحن سريع,111,40,65,3\n,222,1,1,1\n"
	encoded, err := charmap.Windows1256.NewEncoder().String(src)
	require.NoError(t, err)

	products, err := legacy.ParseProductsCSV(bytes.NewBufferString(encoded), "windows-1256")
	require.NoError(t, err)
	require.Len(t, products, 1, "filas sin nombre se omiten")
	assert.Equal(t, "شاحن سريع", products[0].Name)
	assert.Equal(t, "111", products[0].Barcode)
	assert.Equal(t, 3, products[0].StockQty)
	assert.Equal(t, "csv-2", products[0].ID)
}

func TestParseProductsCSV_BOMUTF8(t *testing.T) {
	src := "\ufeffname,salePrice\nFunda,12\n"
	products, err := legacy.ParseProductsCSV(strings.NewReader(src), "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Funda", products[0].Name)
	assert.Equal(t, "12", products[0].SalePrice.String())
}

func TestParseProductsCSV_Errores(t *testing.T) {
	_, err := legacy.ParseProductsCSV(strings.NewReader(""), "")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = legacy.ParseProductsCSV(strings.NewReader("name\nx\n"), "ebcdic")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
