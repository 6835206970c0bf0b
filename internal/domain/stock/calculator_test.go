package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/stock"
)

func mov(id, itemID, warehouseID, typ string, qty int64) *entity.Movement {
	return &entity.Movement{ID: id, ItemID: itemID, WarehouseID: warehouseID, Type: typ, Quantity: qty}
}

// TestOf_FoldBasico reproduce el ciclo clásico: 10 entran, 5 salen, 2 salen.
func TestOf_FoldBasico(t *testing.T) {
	movements := []*entity.Movement{
		mov("m1", "toalla", "hk", entity.MovementTypeIn, 10),
		mov("m2", "toalla", "hk", entity.MovementTypeOut, 5),
		mov("m3", "toalla", "hk", entity.MovementTypeOut, 2),
	}
	assert.Equal(t, int64(3), stock.Of(movements, "toalla", "hk"),
		"10 - 5 - 2 debe dar 3")
}

// TestDelta_OutNoConfiaEnElSigno: un out guardado con cantidad negativa se
// trata por magnitud, nunca suma.
func TestDelta_OutNoConfiaEnElSigno(t *testing.T) {
	assert.Equal(t, int64(-5), stock.Delta(mov("m", "a", "w", entity.MovementTypeOut, 5)))
	assert.Equal(t, int64(-5), stock.Delta(mov("m", "a", "w", entity.MovementTypeOut, -5)),
		"out negativo debe restar su magnitud, no sumar")
}

// TestDelta_AdjustConSigno: el ajuste aporta tal cual, negativo incluido.
func TestDelta_AdjustConSigno(t *testing.T) {
	assert.Equal(t, int64(-4), stock.Delta(mov("m", "a", "w", entity.MovementTypeAdjust, -4)))
	assert.Equal(t, int64(7), stock.Delta(mov("m", "a", "w", entity.MovementTypeAdjust, 7)))
}

// TestDelta_TipoDesconocidoNoAporta protege el fold de datos corruptos.
func TestDelta_TipoDesconocidoNoAporta(t *testing.T) {
	assert.Zero(t, stock.Delta(mov("m", "a", "w", "reserva", 99)))
}

// TestOf_SinMovimientos: cero, no error.
func TestOf_SinMovimientos(t *testing.T) {
	assert.Zero(t, stock.Of(nil, "toalla", "hk"))
}

// TestOf_PuedeQuedarNegativo: las sobre-entregas no se recortan.
func TestOf_PuedeQuedarNegativo(t *testing.T) {
	movements := []*entity.Movement{
		mov("m1", "toalla", "hk", entity.MovementTypeIn, 3),
		mov("m2", "toalla", "hk", entity.MovementTypeOut, 5),
	}
	assert.Equal(t, int64(-2), stock.Of(movements, "toalla", "hk"),
		"el stock negativo se reporta, no se recorta a cero")
}

// TestOf_FiltraPorArticuloYBodega: movimientos ajenos no contaminan.
func TestOf_FiltraPorArticuloYBodega(t *testing.T) {
	movements := []*entity.Movement{
		mov("m1", "toalla", "hk", entity.MovementTypeIn, 10),
		mov("m2", "toalla", "fd", entity.MovementTypeIn, 4),
		mov("m3", "jabon", "hk", entity.MovementTypeIn, 8),
	}
	assert.Equal(t, int64(10), stock.Of(movements, "toalla", "hk"))
	assert.Equal(t, int64(4), stock.Of(movements, "toalla", "fd"))
}

// TestOf_Idempotente: re-calcular sobre el mismo ledger da siempre lo mismo.
func TestOf_Idempotente(t *testing.T) {
	movements := []*entity.Movement{
		mov("m1", "toalla", "hk", entity.MovementTypeIn, 10),
		mov("m2", "toalla", "hk", entity.MovementTypeAdjust, -3),
	}
	first := stock.Of(movements, "toalla", "hk")
	second := stock.Of(movements, "toalla", "hk")
	assert.Equal(t, first, second, "el fold es una función pura del ledger")
	assert.Equal(t, int64(7), first)
}

// TestTotalOf_TransferNetaCero: una transferencia entre bodegas activas no
// cambia el total del sistema.
func TestTotalOf_TransferNetaCero(t *testing.T) {
	movements := []*entity.Movement{
		mov("m1", "toalla", "hk", entity.MovementTypeIn, 10),
		mov("m2", "toalla", "hk", entity.MovementTypeTransfer, -4),
		mov("m3", "toalla", "fd", entity.MovementTypeTransfer, 4),
	}
	allActive := func(string) bool { return true }
	assert.Equal(t, int64(10), stock.TotalOf(movements, "toalla", allActive))
	assert.Equal(t, int64(6), stock.Of(movements, "toalla", "hk"))
	assert.Equal(t, int64(4), stock.Of(movements, "toalla", "fd"))
}

// TestTotalOf_ExcluyeBodegasInactivas: el total agrega solo bodegas activas.
func TestTotalOf_ExcluyeBodegasInactivas(t *testing.T) {
	movements := []*entity.Movement{
		mov("m1", "toalla", "hk", entity.MovementTypeIn, 10),
		mov("m2", "toalla", "bodega-cerrada", entity.MovementTypeIn, 99),
	}
	active := func(warehouseID string) bool { return warehouseID == "hk" }
	assert.Equal(t, int64(10), stock.TotalOf(movements, "toalla", active),
		"el stock de una bodega inactiva no entra al total")
}
