package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var _ repository.RepairRepository = (*RepairRepo)(nil)

// RepairRepo tickets de servicio técnico; los repuestos van en parts_used (JSONB).
type RepairRepo struct {
	q Querier
}

// NewRepairRepository construye el repositorio. Pasar pool o tx (Querier).
func NewRepairRepository(q Querier) *RepairRepo {
	return &RepairRepo{q: q}
}

const repairColumns = `id, ticket_no, customer_name, customer_phone, device_type, device_model, imei,
	issue_description, technician, status, parts_used, labor_cost, total_cost, deposit,
	received_date, expected_delivery, updated_at`

// List devuelve todos los tickets por fecha de recepción.
func (r *RepairRepo) List(ctx context.Context) ([]entity.RepairTicket, error) {
	rows, err := r.q.Query(ctx, `SELECT `+repairColumns+` FROM repair_tickets ORDER BY received_date NULLS FIRST, id`)
	if err != nil {
		return nil, fmt.Errorf("list repair tickets: %w", err)
	}
	defer rows.Close()
	list := make([]entity.RepairTicket, 0)
	for rows.Next() {
		var t entity.RepairTicket
		var status string
		var parts []byte
		var received, expected, updated *time.Time
		if err := rows.Scan(&t.ID, &t.TicketNo, &t.CustomerName, &t.CustomerPhone, &t.DeviceType, &t.DeviceModel,
			&t.IMEI, &t.IssueDescription, &t.Technician, &status, &parts, &t.LaborCost, &t.TotalCost, &t.Deposit,
			&received, &expected, &updated); err != nil {
			return nil, fmt.Errorf("scan repair ticket: %w", err)
		}
		t.Status = entity.RepairStatus(status)
		if t.PartsUsed, err = decodeSaleItems(parts); err != nil {
			return nil, err
		}
		t.ReceivedDate = fromNullTime(received)
		t.ExpectedDelivery = fromNullTime(expected)
		t.UpdatedAt = fromNullTime(updated)
		list = append(list, t)
	}
	return list, rows.Err()
}

// Upsert crea o reemplaza el ticket completo.
func (r *RepairRepo) Upsert(ctx context.Context, t *entity.RepairTicket) error {
	parts, err := encodeSaleItems(t.PartsUsed)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO repair_tickets (`+repairColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name, customer_phone = EXCLUDED.customer_phone,
			device_type = EXCLUDED.device_type, device_model = EXCLUDED.device_model, imei = EXCLUDED.imei,
			issue_description = EXCLUDED.issue_description, technician = EXCLUDED.technician,
			status = EXCLUDED.status, parts_used = EXCLUDED.parts_used, labor_cost = EXCLUDED.labor_cost,
			total_cost = EXCLUDED.total_cost, deposit = EXCLUDED.deposit,
			received_date = EXCLUDED.received_date, expected_delivery = EXCLUDED.expected_delivery,
			updated_at = EXCLUDED.updated_at`,
		t.ID, t.TicketNo, t.CustomerName, t.CustomerPhone, t.DeviceType, t.DeviceModel, t.IMEI,
		t.IssueDescription, t.Technician, string(t.Status), parts, t.LaborCost, t.TotalCost, t.Deposit,
		nullTime(t.ReceivedDate), nullTime(t.ExpectedDelivery), nullTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert repair ticket: %w", err)
	}
	return nil
}
