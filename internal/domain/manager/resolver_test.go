package manager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/manager"
)

func warehouse(id, name string, active bool) *entity.Warehouse {
	return &entity.Warehouse{ID: id, Name: name, IsActive: active}
}

func item(id, category string) *entity.Item {
	return &entity.Item{ID: id, Name: id, Category: category}
}

func categoryRule(m, category string) *entity.ManagerAssignment {
	return &entity.ManagerAssignment{ID: m + "-cat", Manager: m, Type: entity.AssignmentTypeCategory, Category: category}
}

func warehouseRule(m, warehouseID string) *entity.ManagerAssignment {
	return &entity.ManagerAssignment{ID: m + "-wh", Manager: m, Type: entity.AssignmentTypeWarehouse, WarehouseID: warehouseID}
}

func combinedRule(m, warehouseID, category string) *entity.ManagerAssignment {
	return &entity.ManagerAssignment{ID: m + "-comb", Manager: m, Type: entity.AssignmentTypeCombined, WarehouseID: warehouseID, Category: category}
}

func stockTable(table map[string]int64) manager.StockFunc {
	return func(itemID, warehouseID string) int64 {
		return table[itemID+"/"+warehouseID]
	}
}

// TestForWarehouse_Cascada: combined gana a category, category gana a
// warehouse.
func TestForWarehouse_Cascada(t *testing.T) {
	assignments := []*entity.ManagerAssignment{
		warehouseRule("Nick", "hk"),
		categoryRule("Wendy", "客房備品"),
		combinedRule("Irene", "hk", "客房備品"),
	}

	m, ok := manager.ForWarehouse(assignments, "hk", "客房備品")
	assert.True(t, ok)
	assert.Equal(t, "Irene", m, "la regla combined es la más específica y debe ganar")

	m, ok = manager.ForWarehouse(assignments, "fd", "客房備品")
	assert.True(t, ok)
	assert.Equal(t, "Wendy", m, "sin combined aplicable gana la regla de categoría")

	m, ok = manager.ForWarehouse(assignments, "hk", "文具")
	assert.True(t, ok)
	assert.Equal(t, "Nick", m, "sin combined ni categoría cae a la regla de bodega")

	_, ok = manager.ForWarehouse(assignments, "fd", "文具")
	assert.False(t, ok, "sin regla aplicable no hay responsable")
}

// TestOf_SoloBodegasConStock: una bodega sin stock del artículo no participa
// en la resolución aunque una regla la cubra.
func TestOf_SoloBodegasConStock(t *testing.T) {
	it := item("toalla", "客房備品")
	warehouses := []*entity.Warehouse{
		warehouse("hk", "房務部倉庫", true),
		warehouse("fd", "櫃台倉庫", true),
	}
	assignments := []*entity.ManagerAssignment{
		warehouseRule("Nick", "hk"),
		warehouseRule("Wendy", "fd"),
	}
	stocks := stockTable(map[string]int64{"toalla/fd": 5})

	assert.Equal(t, "Wendy", manager.Of(it, warehouses, assignments, stocks),
		"la bodega hk no tiene stock, así que resuelve la regla de fd")
}

// TestOf_BodegaInactivaNoCalifica: el stock en una bodega desactivada no
// atribuye responsabilidad.
func TestOf_BodegaInactivaNoCalifica(t *testing.T) {
	it := item("toalla", "客房備品")
	warehouses := []*entity.Warehouse{warehouse("hk", "房務部倉庫", false)}
	assignments := []*entity.ManagerAssignment{warehouseRule("Nick", "hk")}
	stocks := stockTable(map[string]int64{"toalla/hk": 5})

	assert.Equal(t, manager.Unassigned, manager.Of(it, warehouses, assignments, stocks))
}

// TestOf_SinReglaAplicable devuelve el centinela.
func TestOf_SinReglaAplicable(t *testing.T) {
	it := item("toalla", "客房備品")
	warehouses := []*entity.Warehouse{warehouse("hk", "房務部倉庫", true)}
	stocks := stockTable(map[string]int64{"toalla/hk": 5})

	assert.Equal(t, manager.Unassigned, manager.Of(it, warehouses, nil, stocks))
}

// TestOf_PrimeraBodegaCalificadaGana: con stock en varias bodegas resuelve la
// primera en el orden recibido.
func TestOf_PrimeraBodegaCalificadaGana(t *testing.T) {
	it := item("toalla", "客房備品")
	warehouses := []*entity.Warehouse{
		warehouse("hk", "房務部倉庫", true),
		warehouse("fd", "櫃台倉庫", true),
	}
	assignments := []*entity.ManagerAssignment{
		warehouseRule("Alice", "hk"),
		warehouseRule("Bob", "fd"),
	}
	stocks := stockTable(map[string]int64{"toalla/hk": 3, "toalla/fd": 9})

	assert.Equal(t, "Alice", manager.Of(it, warehouses, assignments, stocks))
}

// TestAllOf_DesglosePorResponsable agrupa las bodegas por responsable en el
// orden de bodegas recibido.
func TestAllOf_DesglosePorResponsable(t *testing.T) {
	it := item("toalla", "客房備品")
	warehouses := []*entity.Warehouse{
		warehouse("hk", "房務部倉庫", true),
		warehouse("fd", "櫃台倉庫", true),
		warehouse("b1", "B1倉庫", true),
	}
	assignments := []*entity.ManagerAssignment{
		warehouseRule("Alice", "hk"),
		warehouseRule("Bob", "fd"),
		warehouseRule("Alice", "b1"),
	}
	stocks := stockTable(map[string]int64{"toalla/hk": 3, "toalla/fd": 9, "toalla/b1": 1})

	breakdowns := manager.AllOf(it, warehouses, assignments, stocks)
	assert.Len(t, breakdowns, 2)
	assert.Equal(t, "Alice", breakdowns[0].Manager)
	assert.Equal(t, []string{"房務部倉庫", "B1倉庫"}, breakdowns[0].Warehouses,
		"las bodegas de un mismo responsable se agrupan preservando el orden")
	assert.Equal(t, "Bob", breakdowns[1].Manager)
	assert.Equal(t, []string{"櫃台倉庫"}, breakdowns[1].Warehouses)
}

// TestAllOf_BodegaSinReglaQuedaFuera: bodegas con stock pero sin regla no
// aparecen en el desglose.
func TestAllOf_BodegaSinReglaQuedaFuera(t *testing.T) {
	it := item("toalla", "客房備品")
	warehouses := []*entity.Warehouse{
		warehouse("hk", "房務部倉庫", true),
		warehouse("fd", "櫃台倉庫", true),
	}
	assignments := []*entity.ManagerAssignment{warehouseRule("Alice", "hk")}
	stocks := stockTable(map[string]int64{"toalla/hk": 3, "toalla/fd": 9})

	breakdowns := manager.AllOf(it, warehouses, assignments, stocks)
	assert.Len(t, breakdowns, 1)
	assert.Equal(t, "Alice", breakdowns[0].Manager)
}
