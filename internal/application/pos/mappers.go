package pos

import (
	"time"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Barcode:       p.Barcode,
		SKU:           p.SKU,
		Category:      p.Category,
		Brand:         p.Brand,
		CostPrice:     p.CostPrice,
		SalePrice:     p.SalePrice,
		StockQty:      p.StockQty,
		MinStockAlert: p.MinStockAlert,
		LowStock:      ledger.IsLowStock(p),
		CreatedAt:     timePtr(p.CreatedAt),
		UpdatedAt:     timePtr(p.UpdatedAt),
	}
}

func toProductResponses(ps []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toSaleItemResponses(items []entity.SaleItem) []dto.SaleItemResponse {
	out := make([]dto.SaleItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
			CostPrice: it.CostPrice,
			Total:     it.Total,
		})
	}
	return out
}

func toSaleResponse(s entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		InvoiceNo:     s.InvoiceNo,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Items:         toSaleItemResponses(s.Items),
		SubTotal:      s.SubTotal,
		TotalDiscount: s.TotalDiscount,
		Tax:           s.Tax,
		GrandTotal:    s.GrandTotal,
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     timePtr(s.CreatedAt),
		UserID:        s.UserID,
	}
}

func toPurchaseResponse(p entity.Purchase) dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ProductID: it.ProductID,
			IsNew:     it.IsNew,
			Name:      it.Name,
			Qty:       it.Qty,
			CostPrice: it.CostPrice,
			SalePrice: it.SalePrice,
			Total:     it.Total,
		})
	}
	return dto.PurchaseResponse{
		ID:         p.ID,
		InvoiceNo:  p.InvoiceNo,
		Supplier:   p.Supplier,
		Phone:      p.Phone,
		Items:      items,
		GrandTotal: p.GrandTotal,
		CreatedAt:  timePtr(p.CreatedAt),
		UserID:     p.UserID,
	}
}

func toRepairResponse(t entity.RepairTicket) dto.RepairResponse {
	return dto.RepairResponse{
		ID:               t.ID,
		TicketNo:         t.TicketNo,
		CustomerName:     t.CustomerName,
		CustomerPhone:    t.CustomerPhone,
		DeviceType:       t.DeviceType,
		DeviceModel:      t.DeviceModel,
		IMEI:             t.IMEI,
		IssueDescription: t.IssueDescription,
		Technician:       t.Technician,
		Status:           string(t.Status),
		PartsUsed:        toSaleItemResponses(t.PartsUsed),
		LaborCost:        t.LaborCost,
		TotalCost:        t.TotalCost,
		Deposit:          t.Deposit,
		AmountDue:        t.AmountDue(),
		ReceivedDate:     timePtr(t.ReceivedDate),
		ExpectedDelivery: timePtr(t.ExpectedDelivery),
	}
}

func toExpenseResponse(e entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:        e.ID,
		Category:  e.Category,
		Amount:    e.Amount,
		Notes:     e.Notes,
		CreatedAt: timePtr(e.CreatedAt),
		AddedBy:   e.AddedBy,
	}
}

func toCartResponse(c *ledger.Cart) dto.CartResponse {
	lines := make([]dto.CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, dto.CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Barcode:   l.Barcode,
			IsNew:     l.IsNew,
			Qty:       l.Qty,
			Price:     l.Price,
			SalePrice: l.SalePrice,
			Total:     l.Total,
		})
	}
	return dto.CartResponse{
		Kind:       string(c.Kind),
		Lines:      lines,
		SubTotal:   c.SubTotal(),
		GrandTotal: c.GrandTotal(),
	}
}

func toSummaryResponse(p ledger.Period, w ledger.Window, s ledger.Summary) dto.SummaryResponse {
	out := dto.SummaryResponse{
		Period:             string(p),
		Label:              p.Label(),
		TotalSalesRevenue:  s.TotalSalesRevenue,
		TotalRepairRevenue: s.TotalRepairRevenue,
		TotalCOGS:          s.TotalCOGS,
		TotalExpenses:      s.TotalExpenses,
		GrossProfit:        s.GrossProfit,
		NetProfit:          s.NetProfit,
		SalesCount:         s.SalesCount,
		RepairCount:        s.RepairCount,
		ExpenseCount:       s.ExpenseCount,
	}
	if !w.Unbounded {
		out.From = timePtr(w.Start)
	}
	return out
}

// paginate recorta [offset, offset+limit) sin salirse del slice.
func paginate[T any](items []T, page dto.PageRequest) ([]T, dto.PageResponse) {
	page.DefaultPage()
	meta := dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)}
	if page.Offset >= len(items) {
		return []T{}, meta
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end], meta
}
