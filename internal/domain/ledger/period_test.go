package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want ledger.Period
	}{
		{"", ledger.PeriodToday},
		{"today", ledger.PeriodToday},
		{" Week ", ledger.PeriodWeek},
		{"MONTH", ledger.PeriodMonth},
		{"all", ledger.PeriodAll},
	}
	for _, tt := range tests {
		got, err := ledger.ParsePeriod(tt.in)
		require.NoError(t, err, "entrada %q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ledger.ParsePeriod("year")
	assert.True(t, errors.Is(err, domain.ErrInvalidPeriod), "un período desconocido debe rechazarse")
}

func TestWindowFor_Inicios(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, testZone)

	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, testZone), ledger.WindowFor(ledger.PeriodToday, now).Start)
	assert.Equal(t, time.Date(2026, time.March, 3, 0, 0, 0, 0, testZone), ledger.WindowFor(ledger.PeriodWeek, now).Start)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, testZone), ledger.WindowFor(ledger.PeriodMonth, now).Start)

	all := ledger.WindowFor(ledger.PeriodAll, now)
	assert.True(t, all.Unbounded)
}

// TestFilter_LimiteMedianoche una venta exactamente a medianoche entra en "hoy";
// una venta un milisegundo antes queda fuera.
func TestFilter_LimiteMedianoche(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, testZone)
	midnight := time.Date(2026, time.March, 10, 0, 0, 0, 0, testZone)

	snap := &entity.Snapshot{Sales: []entity.Sale{
		{ID: "en-limite", CreatedAt: midnight},
		{ID: "antes", CreatedAt: midnight.Add(-time.Millisecond)},
	}}

	f := ledger.Filter(snap, ledger.WindowFor(ledger.PeriodToday, now))
	require.Len(t, f.Sales, 1)
	assert.Equal(t, "en-limite", f.Sales[0].ID)
}

func TestFilter_TimestampAusenteSoloEnTodo(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, testZone)
	snap := &entity.Snapshot{
		Sales:    []entity.Sale{{ID: "sin-fecha"}},
		Expenses: []entity.Expense{{ID: "gasto-sin-fecha"}},
		Repairs:  []entity.RepairTicket{{ID: "rep-sin-fecha"}},
	}

	for _, p := range []ledger.Period{ledger.PeriodToday, ledger.PeriodWeek, ledger.PeriodMonth} {
		f := ledger.Filter(snap, ledger.WindowFor(p, now))
		assert.Empty(t, f.Sales, "período %s", p)
		assert.Empty(t, f.Expenses, "período %s", p)
		assert.Empty(t, f.Repairs, "período %s", p)
	}

	f := ledger.Filter(snap, ledger.WindowFor(ledger.PeriodAll, now))
	assert.Len(t, f.Sales, 1)
	assert.Len(t, f.Expenses, 1)
	assert.Len(t, f.Repairs, 1)
}

func TestFilter_CatalogoDelMismoSnapshot(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, testZone)
	snap := &entity.Snapshot{Products: []entity.Product{{ID: "p1"}, {ID: "p2"}}}

	f := ledger.Filter(snap, ledger.WindowFor(ledger.PeriodToday, now))
	require.Len(t, f.Catalog, 2)
	assert.Equal(t, "p1", f.Catalog[0].ID)

	assert.Empty(t, ledger.Filter(nil, ledger.WindowFor(ledger.PeriodAll, now)).Catalog)
}

func TestFilter_ReparacionesPorFechaDeRecepcion(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, testZone)
	snap := &entity.Snapshot{Repairs: []entity.RepairTicket{
		{ID: "hoy", ReceivedDate: now.Add(-time.Hour), UpdatedAt: now},
		{ID: "ayer", ReceivedDate: now.Add(-24 * time.Hour), UpdatedAt: now},
	}}

	f := ledger.Filter(snap, ledger.WindowFor(ledger.PeriodToday, now))
	require.Len(t, f.Repairs, 1)
	assert.Equal(t, "hoy", f.Repairs[0].ID)

	f = ledger.Filter(snap, ledger.WindowFor(ledger.PeriodWeek, now))
	assert.Len(t, f.Repairs, 2)
}

func TestFilter_SnapshotNil(t *testing.T) {
	f := ledger.Filter(nil, ledger.WindowFor(ledger.PeriodAll, time.Now()))
	assert.Empty(t, f.Sales)
}
