package ledger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Valores por defecto aplicados una sola vez al normalizar registros heredados.
const (
	DefaultCategory      = "General"
	DefaultBrand         = "Sin marca"
	DefaultMinStockAlert = 2
)

// legacyRepairStatus etiquetas de estado guardadas por la aplicación anterior.
var legacyRepairStatus = map[string]entity.RepairStatus{
	"تم الاستلام":       entity.RepairReceived,
	"جاهز للتسليم":      entity.RepairCompleted,
	"تم التسليم للعميل": entity.RepairDelivered,
	"مرتجع بدون إصلاح":  entity.RepairCanceled,
}

// Record registro sin tipar tal como llega de una exportación JSON.
type Record = map[string]any

// CoerceDecimal convierte números, strings numéricos y json.Number a decimal.
// Cualquier otro valor (ausente, vacío, no numérico) es cero.
func CoerceDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case int32:
		return decimal.NewFromInt(int64(x))
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero
		}
		return d
	case bool:
		if x {
			return decimal.NewFromInt(1)
		}
	}
	return decimal.Zero
}

// CoerceInt como CoerceDecimal pero truncando a entero.
func CoerceInt(v any) int {
	return int(CoerceDecimal(v).IntPart())
}

// CoerceTime interpreta epoch en milisegundos (número o string) o RFC3339.
// Ausente o ilegible devuelve time.Time{}.
func CoerceTime(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return time.Time{}
		}
	}
	ms := CoerceDecimal(v).IntPart()
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// CoerceString convierte escalares a texto; nil es "".
func CoerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// first devuelve el primer valor "verdadero" entre los alias del campo.
func first(r Record, keys ...string) any {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		switch x := v.(type) {
		case string:
			if strings.TrimSpace(x) == "" {
				continue
			}
		case float64:
			if x == 0 {
				continue
			}
		case json.Number:
			if CoerceDecimal(x).IsZero() {
				continue
			}
		}
		return v
	}
	return nil
}

// NormalizeProduct aplica los alias y defaults históricos:
// cost|costPrice, qty|stockQty, minStock|minStockAlert (2), category "General", brand "Sin marca".
func NormalizeProduct(id string, r Record) entity.Product {
	p := entity.Product{
		ID:            firstNonEmpty(CoerceString(r["id"]), id),
		Name:          CoerceString(r["name"]),
		Barcode:       CoerceString(r["barcode"]),
		SKU:           CoerceString(r["sku"]),
		Category:      CoerceString(first(r, "category")),
		Brand:         CoerceString(first(r, "brand")),
		CostPrice:     CoerceDecimal(first(r, "costPrice", "cost")),
		SalePrice:     CoerceDecimal(first(r, "salePrice", "price")),
		StockQty:      CoerceInt(first(r, "stockQty", "qty")),
		MinStockAlert: CoerceInt(first(r, "minStockAlert", "minStock")),
		CreatedAt:     CoerceTime(r["createdAt"]),
		UpdatedAt:     CoerceTime(r["updatedAt"]),
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Brand == "" {
		p.Brand = DefaultBrand
	}
	if first(r, "minStockAlert", "minStock") == nil {
		p.MinStockAlert = DefaultMinStockAlert
	}
	return p
}

// NormalizeSaleItem conserva CostPrice como nil cuando el registro nunca lo capturó.
func NormalizeSaleItem(r Record) entity.SaleItem {
	item := entity.SaleItem{
		ProductID: CoerceString(r["productId"]),
		Name:      CoerceString(r["name"]),
		Qty:       CoerceInt(r["qty"]),
		Price:     CoerceDecimal(r["price"]),
		Discount:  CoerceDecimal(r["discount"]),
	}
	if v, ok := r["costPrice"]; ok && v != nil {
		c := CoerceDecimal(v)
		item.CostPrice = &c
	}
	item.Total = item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
	return item
}

func normalizeItems(v any) []entity.SaleItem {
	raw := records(v)
	out := make([]entity.SaleItem, 0, len(raw))
	for _, r := range raw {
		out = append(out, NormalizeSaleItem(r))
	}
	return out
}

// NormalizeSale convierte una venta heredada. GrandTotal ausente se deriva de SubTotal.
func NormalizeSale(id string, r Record) entity.Sale {
	s := entity.Sale{
		ID:            firstNonEmpty(CoerceString(r["id"]), id),
		InvoiceNo:     CoerceString(r["invoiceNo"]),
		CustomerName:  CoerceString(r["customerName"]),
		CustomerPhone: CoerceString(r["customerPhone"]),
		Items:         normalizeItems(r["items"]),
		SubTotal:      CoerceDecimal(r["subTotal"]),
		TotalDiscount: CoerceDecimal(r["totalDiscount"]),
		Tax:           CoerceDecimal(r["tax"]),
		GrandTotal:    CoerceDecimal(r["grandTotal"]),
		PaymentMethod: CoerceString(r["paymentMethod"]),
		CreatedAt:     CoerceTime(r["createdAt"]),
		UserID:        CoerceString(r["userId"]),
	}
	if s.SubTotal.IsZero() {
		for _, it := range s.Items {
			s.SubTotal = s.SubTotal.Add(it.Total)
		}
	}
	if _, ok := r["grandTotal"]; !ok {
		s.GrandTotal = s.SubTotal.Sub(s.TotalDiscount).Add(s.Tax)
	}
	if !entity.ValidPaymentMethod(s.PaymentMethod) {
		s.PaymentMethod = entity.PaymentCash
	}
	return s
}

// NormalizeExpense convierte un gasto heredado; categorías desconocidas pasan a "other".
func NormalizeExpense(id string, r Record) entity.Expense {
	e := entity.Expense{
		ID:        firstNonEmpty(CoerceString(r["id"]), id),
		Category:  strings.ToLower(CoerceString(r["category"])),
		Amount:    CoerceDecimal(r["amount"]),
		Notes:     CoerceString(r["notes"]),
		CreatedAt: CoerceTime(r["createdAt"]),
		AddedBy:   CoerceString(r["addedBy"]),
	}
	if !entity.ValidExpenseCategory(e.Category) {
		e.Category = entity.ExpenseOther
	}
	return e
}

// NormalizeRepairStatus acepta el nombre del estado o la etiqueta heredada; lo demás es Received.
func NormalizeRepairStatus(v any) entity.RepairStatus {
	s := CoerceString(v)
	if st, ok := legacyRepairStatus[s]; ok {
		return st
	}
	if st, err := ParseRepairStatus(s); err == nil {
		return st
	}
	return entity.RepairReceived
}

// NormalizeRepair convierte un ticket heredado y recalcula sus totales.
func NormalizeRepair(id string, r Record) entity.RepairTicket {
	t := entity.RepairTicket{
		ID:               firstNonEmpty(CoerceString(r["id"]), id),
		TicketNo:         CoerceString(r["ticketNo"]),
		CustomerName:     CoerceString(r["customerName"]),
		CustomerPhone:    CoerceString(r["customerPhone"]),
		DeviceType:       CoerceString(r["deviceType"]),
		DeviceModel:      CoerceString(r["deviceModel"]),
		IMEI:             CoerceString(r["imei"]),
		IssueDescription: CoerceString(r["issueDescription"]),
		Technician:       CoerceString(r["technician"]),
		Status:           NormalizeRepairStatus(r["status"]),
		PartsUsed:        normalizeItems(r["partsUsed"]),
		LaborCost:        CoerceDecimal(r["laborCost"]),
		Deposit:          CoerceDecimal(r["deposit"]),
		ReceivedDate:     CoerceTime(r["receivedDate"]),
		ExpectedDelivery: CoerceTime(r["expectedDelivery"]),
	}
	_, hasLabor := r["laborCost"]
	if !hasLabor && len(t.PartsUsed) == 0 {
		// tickets antiguos solo guardaban el total
		t.LaborCost = CoerceDecimal(r["totalCost"])
	}
	RecomputeRepairTotal(&t)
	return t
}

// NormalizePurchase convierte una compra heredada.
func NormalizePurchase(id string, r Record) entity.Purchase {
	p := entity.Purchase{
		ID:         firstNonEmpty(CoerceString(r["id"]), id),
		InvoiceNo:  CoerceString(r["invoiceNo"]),
		Supplier:   CoerceString(r["supplier"]),
		Phone:      CoerceString(r["phone"]),
		GrandTotal: CoerceDecimal(r["grandTotal"]),
		CreatedAt:  CoerceTime(r["createdAt"]),
		UserID:     CoerceString(r["userId"]),
	}
	for _, it := range records(r["items"]) {
		item := entity.PurchaseItem{
			ProductID: CoerceString(it["productId"]),
			Name:      CoerceString(it["name"]),
			Barcode:   CoerceString(it["barcode"]),
			Qty:       CoerceInt(it["qty"]),
			CostPrice: CoerceDecimal(it["costPrice"]),
			SalePrice: CoerceDecimal(it["salePrice"]),
		}
		item.IsNew = strings.HasPrefix(item.ProductID, entity.NewProductIDPrefix)
		item.Total = item.CostPrice.Mul(decimal.NewFromInt(int64(item.Qty)))
		p.Items = append(p.Items, item)
	}
	if _, ok := r["grandTotal"]; !ok {
		for _, it := range p.Items {
			p.GrandTotal = p.GrandTotal.Add(it.Total)
		}
	}
	return p
}

// records acepta arreglos u objetos indexados por clave (forma de la base en tiempo real).
func records(v any) []Record {
	switch x := v.(type) {
	case []any:
		out := make([]Record, 0, len(x))
		for _, e := range x {
			if r, ok := e.(map[string]any); ok {
				out = append(out, r)
			}
		}
		return out
	case []Record:
		return x
	case map[string]any:
		out := make([]Record, 0, len(x))
		for _, k := range sortedKeys(x) {
			if r, ok := x[k].(map[string]any); ok {
				out = append(out, r)
			}
		}
		return out
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
