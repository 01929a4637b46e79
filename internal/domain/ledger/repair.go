package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// DefaultDeliveryWindow plazo de entrega sugerido cuando el ticket no lo indica.
const DefaultDeliveryWindow = 24 * time.Hour

// DefaultTechnician nombre usado si ni el ticket ni el operador lo indican.
const DefaultTechnician = "Técnico de servicio"

// ParseRepairStatus valida contra la enumeración cerrada (sin distinguir mayúsculas).
func ParseRepairStatus(s string) (entity.RepairStatus, error) {
	s = strings.TrimSpace(s)
	for _, st := range entity.RepairStatuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", domain.NewValidationError(domain.ErrInvalidStatus, "estado de reparación inválido: %q", s)
}

// IsForwardTransition indica si from -> to sigue la progresión recomendada
// Received -> Completed -> Delivered, o Received -> Canceled. Mantener el estado cuenta como válido.
// Las demás transiciones se permiten pero deben señalarse.
func IsForwardTransition(from, to entity.RepairStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case entity.RepairReceived:
		return to == entity.RepairCompleted || to == entity.RepairCanceled
	case entity.RepairCompleted:
		return to == entity.RepairDelivered
	}
	return false
}

// RepairPartInput repuesto solicitado para el ticket. Price nil = precio de venta del catálogo.
type RepairPartInput struct {
	ProductID string
	Qty       int
	Price     *decimal.Decimal
}

// RepairInput datos editables de un ticket (alta o edición).
type RepairInput struct {
	CustomerName     string
	CustomerPhone    string
	DeviceType       string
	DeviceModel      string
	IMEI             string
	IssueDescription string
	Technician       string
	Status           string // vacío = estado previo o Received
	Parts            []RepairPartInput
	LaborCost        decimal.Decimal
	Deposit          decimal.Decimal
	ReceivedDate     time.Time
	ExpectedDelivery time.Time
	OperatorName     string // técnico por defecto en tickets nuevos
}

// RepairResult ticket listo para persistir y sus intents.
// FlaggedTransition indica un cambio de estado fuera de la progresión recomendada.
type RepairResult struct {
	Ticket            entity.RepairTicket
	Intents           []Intent
	FlaggedTransition bool
	PreviousStatus    entity.RepairStatus
}

// PrepareRepairTicket aplica valores por defecto, resuelve repuestos contra el catálogo,
// recalcula TotalCost = LaborCost + Σ repuestos y emite el upsert más un ajuste de stock
// por cada producto cuya cantidad comprometida cambió (delta = anterior - nueva).
// previous es nil en altas.
func PrepareRepairTicket(in RepairInput, previous *entity.RepairTicket, catalog Catalog, clock Clock, ids IDGenerator) (RepairResult, error) {
	now := orNow(clock)()

	status := entity.RepairReceived
	if previous != nil && previous.Status != "" {
		status = previous.Status
	}
	if strings.TrimSpace(in.Status) != "" {
		st, err := ParseRepairStatus(in.Status)
		if err != nil {
			return RepairResult{}, err
		}
		status = st
	}
	if in.LaborCost.IsNegative() || in.Deposit.IsNegative() {
		return RepairResult{}, domain.NewValidationError(domain.ErrInvalidInput, "la mano de obra y el anticipo no pueden ser negativos")
	}

	committed := map[string]entity.SaleItem{}
	if previous != nil {
		for _, p := range previous.PartsUsed {
			if prev, ok := committed[p.ProductID]; ok {
				prev.Qty += p.Qty
				committed[p.ProductID] = prev
				continue
			}
			committed[p.ProductID] = p
		}
	}

	parts, err := resolveParts(in.Parts, committed, catalog)
	if err != nil {
		return RepairResult{}, err
	}

	ticket := entity.RepairTicket{
		CustomerName:     strings.TrimSpace(in.CustomerName),
		CustomerPhone:    strings.TrimSpace(in.CustomerPhone),
		DeviceType:       strings.TrimSpace(in.DeviceType),
		DeviceModel:      strings.TrimSpace(in.DeviceModel),
		IMEI:             strings.TrimSpace(in.IMEI),
		IssueDescription: strings.TrimSpace(in.IssueDescription),
		Technician:       strings.TrimSpace(in.Technician),
		Status:           status,
		PartsUsed:        parts,
		LaborCost:        in.LaborCost,
		Deposit:          in.Deposit,
		ReceivedDate:     in.ReceivedDate,
		ExpectedDelivery: in.ExpectedDelivery,
		UpdatedAt:        now,
	}
	if previous != nil {
		ticket.ID = previous.ID
		ticket.TicketNo = previous.TicketNo
		if ticket.ReceivedDate.IsZero() {
			ticket.ReceivedDate = previous.ReceivedDate
		}
		if ticket.ExpectedDelivery.IsZero() {
			ticket.ExpectedDelivery = previous.ExpectedDelivery
		}
		if ticket.Technician == "" {
			ticket.Technician = previous.Technician
		}
	}
	if ticket.ID == "" {
		ticket.ID = orNewID(ids)()
	}
	if ticket.TicketNo == "" {
		ticket.TicketNo = DocumentNumber("REP", now)
	}
	if ticket.ReceivedDate.IsZero() {
		ticket.ReceivedDate = now
	}
	if ticket.ExpectedDelivery.IsZero() {
		ticket.ExpectedDelivery = ticket.ReceivedDate.Add(DefaultDeliveryWindow)
	}
	if ticket.Technician == "" {
		ticket.Technician = strings.TrimSpace(in.OperatorName)
	}
	if ticket.Technician == "" {
		ticket.Technician = DefaultTechnician
	}
	RecomputeRepairTotal(&ticket)

	res := RepairResult{Ticket: ticket}
	if previous != nil {
		res.PreviousStatus = previous.Status
		res.FlaggedTransition = previous.Status != "" && !IsForwardTransition(previous.Status, status)
	}
	res.Intents = append([]Intent{UpsertRepairTicket{Ticket: ticket}}, stockDeltas(committed, parts, catalog)...)
	return res, nil
}

// RecomputeRepairTotal recalcula el total de cada repuesto y TotalCost.
func RecomputeRepairTotal(t *entity.RepairTicket) {
	total := t.LaborCost
	for i := range t.PartsUsed {
		t.PartsUsed[i].Total = t.PartsUsed[i].Price.Mul(decimal.NewFromInt(int64(t.PartsUsed[i].Qty)))
		total = total.Add(t.PartsUsed[i].Total)
	}
	t.TotalCost = total
}

func resolveParts(in []RepairPartInput, committed map[string]entity.SaleItem, catalog Catalog) ([]entity.SaleItem, error) {
	parts := make([]entity.SaleItem, 0, len(in))
	index := map[string]int{}
	for _, req := range in {
		if req.Qty < 1 {
			return nil, invalidQty(req.Qty)
		}
		if req.Price != nil && req.Price.IsNegative() {
			return nil, invalidPrice()
		}
		if i, ok := index[req.ProductID]; ok {
			parts[i].Qty += req.Qty
			if req.Price != nil {
				parts[i].Price = *req.Price
			}
			continue
		}

		prev, hadPrev := committed[req.ProductID]
		p, inCatalog := lookup(catalog, req.ProductID)
		var item entity.SaleItem
		switch {
		case inCatalog:
			cost := p.CostPrice
			item = entity.SaleItem{ProductID: p.ID, Name: p.Name, Price: p.SalePrice, CostPrice: &cost}
			if hadPrev {
				item.Price = prev.Price
				if prev.CostPrice != nil {
					item.CostPrice = prev.CostPrice
				}
			}
		case hadPrev:
			item = prev
		default:
			return nil, domain.NewValidationError(domain.ErrNotFound, "el repuesto %s no existe en el catálogo", req.ProductID)
		}
		item.Qty = req.Qty
		item.Discount = decimal.Zero
		if req.Price != nil {
			item.Price = *req.Price
		}
		index[req.ProductID] = len(parts)
		parts = append(parts, item)
	}

	for _, item := range parts {
		already := committed[item.ProductID].Qty
		if p, ok := lookup(catalog, item.ProductID); ok {
			if available := p.StockQty + already; item.Qty > available {
				return nil, domain.InsufficientStock(available, item.Qty)
			}
		} else if item.Qty > already {
			return nil, domain.InsufficientStock(already, item.Qty)
		}
	}
	return parts, nil
}

func stockDeltas(committed map[string]entity.SaleItem, parts []entity.SaleItem, catalog Catalog) []Intent {
	next := map[string]int{}
	for _, p := range parts {
		next[p.ProductID] += p.Qty
	}
	ids := make([]string, 0, len(committed)+len(next))
	seen := map[string]bool{}
	for id := range committed {
		ids = append(ids, id)
		seen[id] = true
	}
	for id := range next {
		if !seen[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var out []Intent
	for _, id := range ids {
		delta := committed[id].Qty - next[id]
		if delta == 0 {
			continue
		}
		// productos eliminados del catálogo no admiten ajuste
		if _, ok := lookup(catalog, id); !ok {
			continue
		}
		out = append(out, UpdateProductStock{ProductID: id, Delta: delta})
	}
	return out
}
