package pos

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// ReceiptMode formato de impresión.
type ReceiptMode string

const (
	ModeA4  ReceiptMode = "a4"
	ModePOS ReceiptMode = "pos" // rollo térmico de 80 mm
)

// ParseReceiptMode vacío = a4.
func ParseReceiptMode(s string) (ReceiptMode, error) {
	switch m := ReceiptMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeA4, nil
	case ModeA4, ModePOS:
		return m, nil
	}
	return "", domain.NewValidationError(domain.ErrInvalidInput, "formato de impresión inválido %q", s)
}

// PeriodReport datos del reporte financiero imprimible.
type PeriodReport struct {
	Period      ledger.Period
	Label       string
	From        time.Time // zero en el período "all"
	Summary     ledger.Summary
	Expenses    []ledger.CategoryShare
	GeneratedAt time.Time
}

// DocumentRenderer genera los PDF de recibos y reportes.
type DocumentRenderer interface {
	SaleReceipt(ctx context.Context, sale entity.Sale, mode ReceiptMode) ([]byte, error)
	RepairReceipt(ctx context.Context, ticket entity.RepairTicket, mode ReceiptMode) ([]byte, error)
	PeriodReport(ctx context.Context, report PeriodReport) ([]byte, error)
}

// WorkbookExporter genera la hoja de cálculo de ventas y gastos de un período.
// Devuelve domain.ErrNothingToExport si ambas secciones están vacías.
type WorkbookExporter interface {
	Export(ctx context.Context, sales []entity.Sale, expenses []entity.Expense) ([]byte, error)
}
