package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepairPartRequest repuesto usado en la reparación. Price vacío = precio de venta.
type RepairPartRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Qty       int              `json:"qty" validate:"min=1"`
	Price     *decimal.Decimal `json:"price"`
}

// RepairRequest alta o edición de un ticket de servicio técnico.
type RepairRequest struct {
	CustomerName     string              `json:"customer_name" validate:"required,max=200"`
	CustomerPhone    string              `json:"customer_phone" validate:"max=32"`
	DeviceType       string              `json:"device_type" validate:"max=100"`
	DeviceModel      string              `json:"device_model" validate:"required,max=200"`
	IMEI             string              `json:"imei" validate:"max=32"`
	IssueDescription string              `json:"issue_description"`
	Technician       string              `json:"technician" validate:"max=100"`
	Status           string              `json:"status"`
	Parts            []RepairPartRequest `json:"parts" validate:"dive"`
	LaborCost        decimal.Decimal     `json:"labor_cost"`
	Deposit          decimal.Decimal     `json:"deposit"`
	ReceivedDate     *time.Time          `json:"received_date"`
	ExpectedDelivery *time.Time          `json:"expected_delivery"`
}

// RepairResponse ticket con saldo pendiente derivado.
type RepairResponse struct {
	ID               string             `json:"id"`
	TicketNo         string             `json:"ticket_no"`
	CustomerName     string             `json:"customer_name"`
	CustomerPhone    string             `json:"customer_phone"`
	DeviceType       string             `json:"device_type"`
	DeviceModel      string             `json:"device_model"`
	IMEI             string             `json:"imei"`
	IssueDescription string             `json:"issue_description"`
	Technician       string             `json:"technician"`
	Status           string             `json:"status"`
	PartsUsed        []SaleItemResponse `json:"parts_used"`
	LaborCost        decimal.Decimal    `json:"labor_cost"`
	TotalCost        decimal.Decimal    `json:"total_cost"`
	Deposit          decimal.Decimal    `json:"deposit"`
	AmountDue        decimal.Decimal    `json:"amount_due"`
	ReceivedDate     *time.Time         `json:"received_date,omitempty"`
	ExpectedDelivery *time.Time         `json:"expected_delivery,omitempty"`
	// Warning se informa cuando el cambio de estado no sigue la progresión habitual.
	Warning string `json:"warning,omitempty"`
}
