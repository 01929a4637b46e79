// Package excel exporta las ventas y gastos de un período a un libro .xlsx con excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Nombres de las hojas.
const (
	SalesSheet    = "Ventas"
	ExpensesSheet = "Gastos"
)

const columnWidth = 22

var (
	salesHeaders    = []string{"Fecha", "Factura", "Cliente", "Teléfono", "Pago", "Total"}
	expensesHeaders = []string{"Fecha", "Categoría", "Monto", "Notas", "Registrado por"}
)

var _ pos.WorkbookExporter = (*WorkbookExporter)(nil)

// WorkbookExporter implementa pos.WorkbookExporter.
type WorkbookExporter struct {
	rtl bool
}

// NewWorkbookExporter rtl=true muestra las hojas de derecha a izquierda.
func NewWorkbookExporter(rtl bool) *WorkbookExporter {
	return &WorkbookExporter{rtl: rtl}
}

// Export genera el libro. Las secciones vacías no producen hoja; si ambas están
// vacías devuelve domain.ErrNothingToExport.
func (w *WorkbookExporter) Export(ctx context.Context, sales []entity.Sale, expenses []entity.Expense) ([]byte, error) {
	if len(sales) == 0 && len(expenses) == 0 {
		return nil, domain.ErrNothingToExport
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	var sheets []string
	if len(sales) > 0 {
		rows := make([][]any, 0, len(sales))
		for _, s := range sales {
			rows = append(rows, []any{
				s.CreatedAt.Format("2006-01-02 15:04"), s.InvoiceNo, s.CustomerName,
				s.CustomerPhone, s.PaymentMethod, s.GrandTotal.InexactFloat64(),
			})
		}
		if err := w.writeSheet(f, SalesSheet, salesHeaders, rows, header); err != nil {
			return nil, err
		}
		sheets = append(sheets, SalesSheet)
	}
	if len(expenses) > 0 {
		rows := make([][]any, 0, len(expenses))
		for _, e := range expenses {
			rows = append(rows, []any{
				e.CreatedAt.Format("2006-01-02 15:04"), e.Category,
				e.Amount.InexactFloat64(), e.Notes, e.AddedBy,
			})
		}
		if err := w.writeSheet(f, ExpensesSheet, expensesHeaders, rows, header); err != nil {
			return nil, err
		}
		sheets = append(sheets, ExpensesSheet)
	}

	// la hoja por defecto solo se elimina cuando ya existe otra
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja inicial: %w", err)
	}
	idx, err := f.GetSheetIndex(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("excel: hoja activa: %w", err)
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *WorkbookExporter) writeSheet(f *excelize.File, name string, headers []string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &headers); err != nil {
		return fmt.Errorf("excel: cabecera %s: %w", name, err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &r); err != nil {
			return fmt.Errorf("excel: fila %d de %s: %w", i+2, name, err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", last+"1", headerStyle); err != nil {
		return fmt.Errorf("excel: estilo %s: %w", name, err)
	}
	if err := f.SetColWidth(name, "A", last, columnWidth); err != nil {
		return fmt.Errorf("excel: ancho %s: %w", name, err)
	}
	if w.rtl {
		rtl := true
		if err := f.SetSheetView(name, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return fmt.Errorf("excel: vista %s: %w", name, err)
		}
	}
	return nil
}
