package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Las líneas de venta, compra y repuestos se guardan como JSONB con las mismas claves
// que la exportación heredada, así el importador y el store comparten formato.

type saleItemJSON struct {
	ProductID string           `json:"productId"`
	Name      string           `json:"name"`
	Qty       int              `json:"qty"`
	Price     decimal.Decimal  `json:"price"`
	CostPrice *decimal.Decimal `json:"costPrice,omitempty"`
	Discount  decimal.Decimal  `json:"discount"`
	Total     decimal.Decimal  `json:"total"`
}

type purchaseItemJSON struct {
	ProductID string          `json:"productId"`
	IsNew     bool            `json:"isNew,omitempty"`
	Name      string          `json:"name"`
	Barcode   string          `json:"barcode,omitempty"`
	Qty       int             `json:"qty"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Total     decimal.Decimal `json:"total"`
}

func encodeSaleItems(items []entity.SaleItem) ([]byte, error) {
	out := make([]saleItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, saleItemJSON(it))
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode sale items: %w", err)
	}
	return b, nil
}

func decodeSaleItems(raw []byte) ([]entity.SaleItem, error) {
	if len(raw) == 0 {
		return []entity.SaleItem{}, nil
	}
	var in []saleItemJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("decode sale items: %w", err)
	}
	out := make([]entity.SaleItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.SaleItem(it))
	}
	return out, nil
}

func encodePurchaseItems(items []entity.PurchaseItem) ([]byte, error) {
	out := make([]purchaseItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, purchaseItemJSON(it))
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode purchase items: %w", err)
	}
	return b, nil
}

func decodePurchaseItems(raw []byte) ([]entity.PurchaseItem, error) {
	if len(raw) == 0 {
		return []entity.PurchaseItem{}, nil
	}
	var in []purchaseItemJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("decode purchase items: %w", err)
	}
	out := make([]entity.PurchaseItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.PurchaseItem(it))
	}
	return out, nil
}
