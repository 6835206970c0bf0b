package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/hotel-stock/internal/application/dto"
	"github.com/tu-usuario/hotel-stock/internal/application/inventory"
	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
	"github.com/tu-usuario/hotel-stock/internal/domain"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
	"github.com/tu-usuario/hotel-stock/pkg/logger"
)

// fixture levanta el stack completo sobre el almacén en memoria: las
// notificaciones síncronas hacen que la vista refleje cada escritura al
// instante.
type fixture struct {
	store *docstore.MemoryStore
	view  *ledger.Service

	items       *inventory.ItemUseCase
	warehouses  *inventory.WarehouseUseCase
	movements   *inventory.MovementUseCase
	transfers   *inventory.TransferUseCase
	assignments *inventory.AssignmentUseCase
	picklists   *inventory.PicklistUseCase
	admin       *inventory.AdminUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := docstore.NewMemoryStore()
	view := ledger.NewService(store, logger.Nop())
	require.NoError(t, view.Start(context.Background()))
	t.Cleanup(view.Stop)

	picklists := inventory.NewPicklistUseCase(store, view)
	return &fixture{
		store:       store,
		view:        view,
		items:       inventory.NewItemUseCase(store, view, picklists),
		warehouses:  inventory.NewWarehouseUseCase(store, view),
		movements:   inventory.NewMovementUseCase(store, view, picklists),
		transfers:   inventory.NewTransferUseCase(store, view, picklists),
		assignments: inventory.NewAssignmentUseCase(store, view, picklists),
		picklists:   picklists,
		admin:       inventory.NewAdminUseCase(store),
	}
}

func (f *fixture) mustWarehouse(t *testing.T, name, department string) *dto.WarehouseResponse {
	t.Helper()
	w, err := f.warehouses.Create(context.Background(), dto.CreateWarehouseRequest{Name: name, Department: department})
	require.NoError(t, err)
	return w
}

func (f *fixture) mustItem(t *testing.T, name, category, warehouseID string, qty int64) *dto.ItemResponse {
	t.Helper()
	it, err := f.items.Create(context.Background(), dto.CreateItemRequest{
		Name:               name,
		Category:           category,
		Frequency:          entity.FrequencyMonthly,
		InitialWarehouseID: warehouseID,
		InitialQuantity:    qty,
		Operator:           "Nick",
	})
	require.NoError(t, err)
	return it
}

// TestItemCreate_ConStockInicial: el alta con bodega y cantidad inicial deja
// el movimiento in escrito y el stock derivado lo refleja.
func TestItemCreate_ConStockInicial(t *testing.T) {
	f := newFixture(t)
	wh := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)
	it := f.mustItem(t, "毛巾", "客房備品", wh.ID, 10)

	assert.Equal(t, int64(10), f.view.StockOf(it.ID, wh.ID))
	movs := f.movements.List(it.ID, "", "")
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeIn, movs[0].Type)
	assert.Equal(t, "初始庫存", movs[0].Note)
}

// TestItemCreate_Duplicado: mismo (nombre, categoría) se rechaza.
func TestItemCreate_Duplicado(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, "毛巾", "客房備品", "", 0)

	_, err := f.items.Create(context.Background(), dto.CreateItemRequest{Name: "毛巾", Category: "客房備品"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.items.Create(context.Background(), dto.CreateItemRequest{Name: "毛巾", Category: "文具"})
	assert.NoError(t, err, "mismo nombre en otra categoría no es duplicado")
}

// TestItemCreate_CategoriaInvalida se rechaza en la frontera.
func TestItemCreate_CategoriaInvalida(t *testing.T) {
	f := newFixture(t)
	_, err := f.items.Create(context.Background(), dto.CreateItemRequest{Name: "毛巾", Category: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestItemDelete_CascadaDeMovimientos: borrar el artículo arrastra su
// historia completa.
func TestItemDelete_CascadaDeMovimientos(t *testing.T) {
	f := newFixture(t)
	wh := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)
	it := f.mustItem(t, "毛巾", "客房備品", wh.ID, 10)

	require.NoError(t, f.items.Delete(context.Background(), it.ID))
	assert.Empty(t, f.movements.List("", "", ""), "los movimientos del artículo borrado no deben sobrevivir")
	_, err := f.items.Get(it.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestMovement_BodegaInactivaRechazada: una bodega desactivada no recibe
// movimientos nuevos.
func TestMovement_BodegaInactivaRechazada(t *testing.T) {
	f := newFixture(t)
	wh := f.mustWarehouse(t, "舊倉庫", entity.DepartmentHousekeeping)
	it := f.mustItem(t, "毛巾", "客房備品", wh.ID, 10)

	inactive := false
	_, err := f.warehouses.Update(context.Background(), wh.ID, dto.UpdateWarehouseRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = f.movements.Register(context.Background(), dto.RegisterMovementRequest{
		ItemID: it.ID, WarehouseID: wh.ID, Type: entity.MovementTypeIn, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInactive)
}

// TestMovement_ValidacionDeCantidad por tipo: in/out positivos, adjust
// distinto de cero.
func TestMovement_ValidacionDeCantidad(t *testing.T) {
	f := newFixture(t)
	wh := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)
	it := f.mustItem(t, "毛巾", "客房備品", wh.ID, 10)

	cases := []struct {
		typ string
		qty int64
		ok  bool
	}{
		{entity.MovementTypeIn, 5, true},
		{entity.MovementTypeIn, 0, false},
		{entity.MovementTypeOut, -3, false},
		{entity.MovementTypeAdjust, -3, true},
		{entity.MovementTypeAdjust, 0, false},
		{entity.MovementTypeTransfer, 5, false}, // transfer no pasa por aquí
	}
	for _, tc := range cases {
		_, err := f.movements.Register(context.Background(), dto.RegisterMovementRequest{
			ItemID: it.ID, WarehouseID: wh.ID, Type: tc.typ, Quantity: tc.qty,
		})
		if tc.ok {
			assert.NoError(t, err, "tipo %s cantidad %d debía aceptarse", tc.typ, tc.qty)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %s cantidad %d debía rechazarse", tc.typ, tc.qty)
		}
	}
}

// TestTransfer_ParejaEnlazadaYTotalNeutro: una transferencia produce dos
// movimientos recíprocos y no cambia el stock total.
func TestTransfer_ParejaEnlazadaYTotalNeutro(t *testing.T) {
	f := newFixture(t)
	from := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)
	to := f.mustWarehouse(t, "櫃台倉庫", entity.DepartmentFrontDesk)
	it := f.mustItem(t, "毛巾", "客房備品", from.ID, 10)

	pair, err := f.transfers.Transfer(context.Background(), dto.TransferRequest{
		ItemID: it.ID, FromWarehouseID: from.ID, ToWarehouseID: to.ID, Quantity: 4, Operator: "Wendy",
	})
	require.NoError(t, err)
	require.Len(t, pair, 2)

	outLeg, inLeg := pair[0], pair[1]
	assert.Equal(t, int64(-4), outLeg.Quantity)
	assert.Equal(t, int64(4), inLeg.Quantity)
	assert.Equal(t, to.ID, outLeg.TargetWarehouseID)
	assert.Equal(t, from.ID, inLeg.TargetWarehouseID)
	assert.Equal(t, inLeg.ID, outLeg.LinkedMovementID, "cada pata referencia a su pareja")
	assert.Equal(t, outLeg.ID, inLeg.LinkedMovementID)

	assert.Equal(t, int64(6), f.view.StockOf(it.ID, from.ID))
	assert.Equal(t, int64(4), f.view.StockOf(it.ID, to.ID))
	assert.Equal(t, int64(10), f.view.TotalStockOf(it.ID), "la transferencia no crea ni destruye stock")
}

// TestTransfer_MismaBodegaRechazada origen y destino deben diferir.
func TestTransfer_MismaBodegaRechazada(t *testing.T) {
	f := newFixture(t)
	wh := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)
	it := f.mustItem(t, "毛巾", "客房備品", wh.ID, 10)

	_, err := f.transfers.Transfer(context.Background(), dto.TransferRequest{
		ItemID: it.ID, FromWarehouseID: wh.ID, ToWarehouseID: wh.ID, Quantity: 4,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestWarehouseDelete_CascadaIncluyeParejaDeTransfer: borrar una bodega
// arrastra también la pata remota de sus transfers, sin dejar patas cojas.
func TestWarehouseDelete_CascadaIncluyeParejaDeTransfer(t *testing.T) {
	f := newFixture(t)
	from := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)
	to := f.mustWarehouse(t, "櫃台倉庫", entity.DepartmentFrontDesk)
	it := f.mustItem(t, "毛巾", "客房備品", from.ID, 10)

	_, err := f.transfers.Transfer(context.Background(), dto.TransferRequest{
		ItemID: it.ID, FromWarehouseID: from.ID, ToWarehouseID: to.ID, Quantity: 4,
	})
	require.NoError(t, err)

	require.NoError(t, f.warehouses.Delete(context.Background(), to.ID))
	for _, m := range f.movements.List("", "", "") {
		assert.NotEqual(t, entity.MovementTypeTransfer, m.Type,
			"ninguna pata de la transferencia debe sobrevivir al borrado de la bodega destino")
	}
	assert.Equal(t, int64(10), f.view.StockOf(it.ID, from.ID),
		"al caer la pareja completa el stock de origen vuelve a su valor previo")
}

// TestAssignment_ValidacionPorTipo: cada tipo exige sus campos y limpia los
// ajenos.
func TestAssignment_ValidacionPorTipo(t *testing.T) {
	f := newFixture(t)
	wh := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)

	_, err := f.assignments.Create(context.Background(), dto.CreateAssignmentRequest{
		Manager: "Nick", Type: entity.AssignmentTypeCategory,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "category sin categoría debe fallar")

	_, err = f.assignments.Create(context.Background(), dto.CreateAssignmentRequest{
		Manager: "Nick", Type: entity.AssignmentTypeWarehouse,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "warehouse sin bodega debe fallar")

	created, err := f.assignments.Create(context.Background(), dto.CreateAssignmentRequest{
		Manager: "Nick", Type: entity.AssignmentTypeWarehouse, WarehouseID: wh.ID, Category: "客房備品",
	})
	require.NoError(t, err)
	assert.Empty(t, created.Category, "una regla warehouse no guarda categoría")
}

// TestAssignment_AltaAgregaResponsableALaLista: crear una regla asegura el
// nombre en managerList.
func TestAssignment_AltaAgregaResponsableALaLista(t *testing.T) {
	f := newFixture(t)
	wh := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)

	_, err := f.assignments.Create(context.Background(), dto.CreateAssignmentRequest{
		Manager: "Cammy", Type: entity.AssignmentTypeWarehouse, WarehouseID: wh.ID,
	})
	require.NoError(t, err)

	values, err := f.picklists.Values(entity.PicklistManagers)
	require.NoError(t, err)
	assert.Contains(t, values, "Cammy")
}

// TestItemResponse_ResponsableResuelto: la respuesta del artículo lleva el
// responsable de la cascada sobre las bodegas con stock.
func TestItemResponse_ResponsableResuelto(t *testing.T) {
	f := newFixture(t)
	wh := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)
	it := f.mustItem(t, "毛巾", "客房備品", wh.ID, 10)

	got, err := f.items.Get(it.ID)
	require.NoError(t, err)
	assert.Equal(t, "unassigned", got.Manager, "sin reglas el responsable es el centinela")

	_, err = f.assignments.Create(context.Background(), dto.CreateAssignmentRequest{
		Manager: "Wendy", Type: entity.AssignmentTypeCategory, Category: "客房備品",
	})
	require.NoError(t, err)

	got, err = f.items.Get(it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wendy", got.Manager)
	require.Len(t, got.Stocks, 1)
	assert.Equal(t, int64(10), got.Stocks[0].Quantity)
}

// TestClearAll_RestauraSemillaDeResponsables: borra todo y deja la lista de
// responsables por defecto.
func TestClearAll_RestauraSemillaDeResponsables(t *testing.T) {
	f := newFixture(t)
	wh := f.mustWarehouse(t, "房務部倉庫", entity.DepartmentHousekeeping)
	f.mustItem(t, "毛巾", "客房備品", wh.ID, 10)

	require.NoError(t, f.admin.ClearAll(context.Background()))

	assert.Empty(t, f.items.List(""))
	assert.Empty(t, f.warehouses.List(false))
	assert.Empty(t, f.movements.List("", "", ""))

	values, err := f.picklists.Values(entity.PicklistManagers)
	require.NoError(t, err)
	assert.ElementsMatch(t, entity.DefaultManagers, values)
}
