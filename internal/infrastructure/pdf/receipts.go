package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Etiquetas de estado impresas en el ticket.
var repairStatusLabels = map[entity.RepairStatus]string{
	entity.RepairReceived:  "Recibido",
	entity.RepairCompleted: "Reparado",
	entity.RepairDelivered: "Entregado",
	entity.RepairCanceled:  "Devuelto sin reparar",
}

// SaleReceipt recibo de venta.
func (g *MarotoPDFGenerator) SaleReceipt(_ context.Context, sale entity.Sale, mode pos.ReceiptMode) ([]byte, error) {
	items := make([]itemLine, 0, len(sale.Items))
	for _, it := range sale.Items {
		items = append(items, itemLine{Qty: it.Qty, Name: it.Name, Price: g.money.format(it.Price), Total: g.money.format(it.Total)})
	}
	customer := nonEmpty(sale.CustomerName, "Cliente de contado")
	payment := "Efectivo"
	if sale.PaymentMethod == entity.PaymentCard {
		payment = "Tarjeta"
	}
	totals := [][2]string{
		{"Subtotal:", g.money.format(sale.SubTotal)},
		{"Descuento:", g.money.format(sale.TotalDiscount)},
		{"TOTAL:", g.money.format(sale.GrandTotal)},
	}

	m := g.newDocument("Recibo "+sale.InvoiceNo, mode)
	roll := mode == pos.ModePOS
	if roll {
		m.AddRows(g.rollHeaderRows("RECIBO", sale.InvoiceNo, dateLabel(sale.CreatedAt))...)
		m.AddRows(row.New(4).Add(col.New(12).Add(text.New("Cliente: "+customer, props.Text{Size: 7}))))
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
		m.AddRows(rollItemRows(items)...)
	} else {
		m.AddRows(g.headerRow("RECIBO DE VENTA", sale.InvoiceNo, dateLabel(sale.CreatedAt)))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
		m.AddRows(partyRow("CLIENTE", customer, "Tel: "+nonEmpty(sale.CustomerPhone, "—")+"   |   Pago: "+payment))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(tableHeaderRow())
		m.AddRows(tableDetailRows(items)...)
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRows(totals, roll)...)
	if roll {
		m.AddRows(row.New(4).Add(col.New(12).Add(text.New("Pago: "+payment, props.Text{Size: 7}))))
	}
	m.AddRows(g.footerRow(roll))
	return generate(m)
}

// RepairReceipt ticket de servicio técnico con QR del número para seguimiento.
func (g *MarotoPDFGenerator) RepairReceipt(_ context.Context, t entity.RepairTicket, mode pos.ReceiptMode) ([]byte, error) {
	items := make([]itemLine, 0, len(t.PartsUsed)+1)
	for _, p := range t.PartsUsed {
		items = append(items, itemLine{Qty: p.Qty, Name: p.Name, Price: g.money.format(p.Price), Total: g.money.format(p.Total)})
	}
	if !t.LaborCost.IsZero() {
		items = append(items, itemLine{Qty: 1, Name: "Mano de obra", Price: g.money.format(t.LaborCost), Total: g.money.format(t.LaborCost)})
	}
	device := strings.TrimSpace(t.DeviceType + " " + t.DeviceModel)
	status := repairStatusLabels[t.Status]
	totals := [][2]string{
		{"Total:", g.money.format(t.TotalCost)},
		{"Anticipo:", g.money.format(t.Deposit)},
		{"SALDO:", g.money.format(t.AmountDue())},
	}
	details := []string{
		"Equipo: " + nonEmpty(device, "—"),
		"IMEI/Serie: " + nonEmpty(t.IMEI, "—"),
		"Falla: " + nonEmpty(t.IssueDescription, "—"),
		"Técnico: " + nonEmpty(t.Technician, "—"),
		"Estado: " + nonEmpty(status, string(t.Status)),
		"Entrega estimada: " + dateLabel(t.ExpectedDelivery),
	}

	m := g.newDocument("Ticket "+t.TicketNo, mode)
	roll := mode == pos.ModePOS
	if roll {
		m.AddRows(g.rollHeaderRows("TICKET", t.TicketNo, dateLabel(t.ReceivedDate))...)
		m.AddRows(row.New(4).Add(col.New(12).Add(text.New("Cliente: "+t.CustomerName, props.Text{Size: 7}))))
		for _, d := range details {
			m.AddRows(row.New(4).Add(col.New(12).Add(text.New(d, props.Text{Size: 7}))))
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
		m.AddRows(rollItemRows(items)...)
	} else {
		m.AddRows(g.headerRow("ORDEN DE SERVICIO", t.TicketNo, dateLabel(t.ReceivedDate)))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
		m.AddRows(partyRow("CLIENTE", t.CustomerName, "Tel: "+nonEmpty(t.CustomerPhone, "—")))
		m.AddRows(detailRows(details)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		if len(items) > 0 {
			m.AddRows(tableHeaderRow())
			m.AddRows(tableDetailRows(items)...)
		}
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRows(totals, roll)...)
	m.AddRows(qrRow(t.TicketNo, roll))
	m.AddRows(g.footerRow(roll))
	return generate(m)
}

func detailRows(lines []string) []core.Row {
	rows := make([]core.Row, 0, (len(lines)+1)/2)
	for i := 0; i < len(lines); i += 2 {
		r := row.New(5).Add(col.New(6).Add(text.New(lines[i], props.Text{Size: 8, Top: 1})))
		if i+1 < len(lines) {
			r.Add(col.New(6).Add(text.New(lines[i+1], props.Text{Size: 8, Top: 1})))
		}
		rows = append(rows, r)
	}
	return rows
}

func qrRow(data string, roll bool) core.Row {
	height := 30.0
	if roll {
		height = 22
	}
	return row.New(height).Add(
		col.New(4).Add(code.NewQr(data, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(text.New(fmt.Sprintf("Presente este ticket\npara retirar el equipo.\n%s", data), props.Text{
			Size: 8, Top: 4, Left: 3, Color: colorGray,
		})),
	)
}
