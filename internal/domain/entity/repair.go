package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepairStatus estado de un ticket de reparación.
type RepairStatus string

// Estados del ticket: Received -> Completed -> Delivered, o Canceled (devuelto sin reparar).
const (
	RepairReceived  RepairStatus = "Received"
	RepairCompleted RepairStatus = "Completed"
	RepairDelivered RepairStatus = "Delivered"
	RepairCanceled  RepairStatus = "Canceled"
)

// RepairStatuses enumeración cerrada de estados.
var RepairStatuses = []RepairStatus{RepairReceived, RepairCompleted, RepairDelivered, RepairCanceled}

// RepairTicket orden de servicio técnico. Nunca se elimina.
type RepairTicket struct {
	ID               string
	TicketNo         string
	CustomerName     string
	CustomerPhone    string
	DeviceType       string
	DeviceModel      string
	IMEI             string
	IssueDescription string
	Technician       string
	Status           RepairStatus
	PartsUsed        []SaleItem
	LaborCost        decimal.Decimal
	TotalCost        decimal.Decimal // LaborCost + Σ PartsUsed.Total
	Deposit          decimal.Decimal
	ReceivedDate     time.Time
	ExpectedDelivery time.Time
	UpdatedAt        time.Time
}

// AmountDue saldo pendiente; se deriva, nunca se almacena.
func (t RepairTicket) AmountDue() decimal.Decimal {
	return t.TotalCost.Sub(t.Deposit)
}
