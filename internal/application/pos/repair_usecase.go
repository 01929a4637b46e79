package pos

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// RepairUseCase tickets de servicio técnico. Los repuestos usados descuentan stock y
// al editarlos se devuelve o descuenta solo la diferencia.
type RepairUseCase struct {
	core     Core
	renderer DocumentRenderer
}

// NewRepairUseCase construye el caso de uso. renderer puede ser nil (sin impresión).
func NewRepairUseCase(core Core, renderer DocumentRenderer) *RepairUseCase {
	return &RepairUseCase{core: core, renderer: renderer}
}

// List tickets, el recibido más recientemente primero. status vacío = todos.
func (uc *RepairUseCase) List(status string) ([]dto.RepairResponse, error) {
	var want entity.RepairStatus
	if strings.TrimSpace(status) != "" {
		st, err := ledger.ParseRepairStatus(status)
		if err != nil {
			return nil, err
		}
		want = st
	}
	all := uc.core.snapshot().Repairs
	repairs := make([]entity.RepairTicket, 0, len(all))
	for _, r := range all {
		if want == "" || r.Status == want {
			repairs = append(repairs, r)
		}
	}
	sort.SliceStable(repairs, func(i, j int) bool { return repairs[i].ReceivedDate.After(repairs[j].ReceivedDate) })
	out := make([]dto.RepairResponse, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, toRepairResponse(r))
	}
	return out, nil
}

// Get devuelve un ticket o ErrNotFound.
func (uc *RepairUseCase) Get(id string) (*dto.RepairResponse, error) {
	t, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	out := toRepairResponse(*t)
	return &out, nil
}

// Create abre un ticket nuevo.
func (uc *RepairUseCase) Create(ctx context.Context, user entity.User, in dto.RepairRequest) (*dto.RepairResponse, error) {
	return uc.save(ctx, user, in, nil)
}

// Update edita un ticket existente (datos, estado y repuestos).
func (uc *RepairUseCase) Update(ctx context.Context, user entity.User, id string, in dto.RepairRequest) (*dto.RepairResponse, error) {
	previous, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	return uc.save(ctx, user, in, previous)
}

func (uc *RepairUseCase) save(ctx context.Context, user entity.User, in dto.RepairRequest, previous *entity.RepairTicket) (*dto.RepairResponse, error) {
	parts := make([]ledger.RepairPartInput, 0, len(in.Parts))
	for _, p := range in.Parts {
		parts = append(parts, ledger.RepairPartInput{ProductID: p.ProductID, Qty: p.Qty, Price: p.Price})
	}
	res, err := ledger.PrepareRepairTicket(ledger.RepairInput{
		CustomerName:     in.CustomerName,
		CustomerPhone:    NormalizePhone(in.CustomerPhone, uc.core.Region),
		DeviceType:       in.DeviceType,
		DeviceModel:      in.DeviceModel,
		IMEI:             in.IMEI,
		IssueDescription: in.IssueDescription,
		Technician:       in.Technician,
		Status:           in.Status,
		Parts:            parts,
		LaborCost:        in.LaborCost,
		Deposit:          in.Deposit,
		ReceivedDate:     derefTime(in.ReceivedDate),
		ExpectedDelivery: derefTime(in.ExpectedDelivery),
		OperatorName:     user.Name,
	}, previous, uc.core.snapshot(), uc.core.Clock, uc.core.IDs)
	if err != nil {
		return nil, err
	}

	op := "repair.create"
	if previous != nil {
		op = "repair.update"
	}
	if err := uc.core.apply(ctx, op, res.Intents); err != nil {
		return nil, err
	}

	out := toRepairResponse(res.Ticket)
	if res.FlaggedTransition {
		uc.core.logger().Warn().
			Str("ticket", res.Ticket.TicketNo).
			Str("from", string(res.PreviousStatus)).
			Str("to", string(res.Ticket.Status)).
			Str("user", user.ID).
			Msg("cambio de estado fuera de la progresión habitual")
		out.Warning = fmt.Sprintf("el ticket pasó de %s a %s", res.PreviousStatus, res.Ticket.Status)
	}
	return &out, nil
}

// Receipt PDF del ticket para el cliente.
func (uc *RepairUseCase) Receipt(ctx context.Context, id, mode string) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", fmt.Errorf("receipt: %w", domain.ErrUnavailable)
	}
	m, err := ParseReceiptMode(mode)
	if err != nil {
		return nil, "", err
	}
	t, err := uc.find(id)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.renderer.RepairReceipt(ctx, *t, m)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: %w", err)
	}
	return data, fmt.Sprintf("ticket_%s.pdf", t.TicketNo), nil
}

func (uc *RepairUseCase) find(id string) (*entity.RepairTicket, error) {
	for _, r := range uc.core.snapshot().Repairs {
		if r.ID == id {
			t := r
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
