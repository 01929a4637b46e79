package pos_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

func newRepairs(t *testing.T) (*fixture, *pos.RepairUseCase) {
	f := newFixture(t, &entity.Snapshot{Products: []entity.Product{product("pant", 5, "40", "90")}})
	return f, pos.NewRepairUseCase(f.core, nil)
}

func TestRepair_CrearDescuentaRepuestos(t *testing.T) {
	ctx := context.Background()
	f, uc := newRepairs(t)

	res, err := uc.Create(ctx, cajero, dto.RepairRequest{
		CustomerName: "Luis",
		DeviceModel:  "Galaxy A10",
		Parts:        []dto.RepairPartRequest{{ProductID: "pant", Qty: 2}},
		LaborCost:    dec("50"),
		Deposit:      dec("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.RepairReceived), res.Status)
	assert.Equal(t, "Caja 1", res.Technician, "técnico por defecto = operador")
	assertDec(t, "230", res.TotalCost)
	assertDec(t, "130", res.AmountDue)
	require.NotNil(t, res.ExpectedDelivery)
	assert.Equal(t, now.Add(24*time.Hour), *res.ExpectedDelivery)
	assert.Equal(t, 3, f.product(t, "pant").StockQty)

	// bajar a un repuesto devuelve uno al stock
	res, err = uc.Update(ctx, cajero, res.ID, dto.RepairRequest{
		CustomerName: "Luis",
		DeviceModel:  "Galaxy A10",
		Status:       string(entity.RepairCompleted),
		Parts:        []dto.RepairPartRequest{{ProductID: "pant", Qty: 1}},
		LaborCost:    dec("50"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warning)
	assertDec(t, "140", res.TotalCost)
	assert.Equal(t, 4, f.product(t, "pant").StockQty)
	assert.Len(t, f.core.Snapshots.Current().Repairs, 1)
}

func TestRepair_TopeDeRepuestos(t *testing.T) {
	_, uc := newRepairs(t)
	_, err := uc.Create(context.Background(), cajero, dto.RepairRequest{
		CustomerName: "Luis",
		DeviceModel:  "Galaxy A10",
		Parts:        []dto.RepairPartRequest{{ProductID: "pant", Qty: 6}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRepair_TransicionMarcada(t *testing.T) {
	ctx := context.Background()
	_, uc := newRepairs(t)

	res, err := uc.Create(ctx, cajero, dto.RepairRequest{CustomerName: "Ana", DeviceModel: "iPhone 8", Status: "delivered"})
	require.NoError(t, err)

	res, err = uc.Update(ctx, cajero, res.ID, dto.RepairRequest{CustomerName: "Ana", DeviceModel: "iPhone 8", Status: "Received"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.RepairReceived), res.Status)
	assert.NotEmpty(t, res.Warning)
}

func TestRepair_ListarYBuscar(t *testing.T) {
	ctx := context.Background()
	_, uc := newRepairs(t)

	created, err := uc.Create(ctx, cajero, dto.RepairRequest{CustomerName: "Ana", DeviceModel: "iPhone 8"})
	require.NoError(t, err)

	got, err := uc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.TicketNo, got.TicketNo)

	_, err = uc.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List("received")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	list, err = uc.List("Completed")
	require.NoError(t, err)
	assert.Empty(t, list)
	_, err = uc.List("perdido")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = uc.Update(ctx, cajero, "no-existe", dto.RepairRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
