// Package stock deriva cantidades a partir del ledger de movimientos.
// La cantidad nunca se persiste: siempre es el fold de todos los eventos.
package stock

import "github.com/tu-usuario/hotel-stock/internal/domain/entity"

// Delta devuelve el aporte de un movimiento al stock de su bodega según el
// tipo:
//
//   - in:       suma Quantity tal cual (se espera positivo, no se rechaza)
//   - adjust:   suma Quantity tal cual (negativo = corrección a la baja)
//   - out:      resta la magnitud; el signo guardado no se confía
//   - transfer: suma Quantity tal cual (ya viene firmado por el coordinador:
//     negativo en origen, positivo en destino)
//
// Tipos desconocidos no aportan.
func Delta(m *entity.Movement) int64 {
	switch m.Type {
	case entity.MovementTypeIn, entity.MovementTypeAdjust, entity.MovementTypeTransfer:
		return m.Quantity
	case entity.MovementTypeOut:
		if m.Quantity < 0 {
			return m.Quantity
		}
		return -m.Quantity
	}
	return 0
}

// Of cantidad actual de un artículo en una bodega: fold de los movimientos
// que coinciden. Sin movimientos el resultado es 0, no un error; el stock
// puede quedar negativo (sobre-entregas) y no se recorta.
func Of(movements []*entity.Movement, itemID, warehouseID string) int64 {
	var total int64
	for _, m := range movements {
		if m.ItemID == itemID && m.WarehouseID == warehouseID {
			total += Delta(m)
		}
	}
	return total
}

// TotalOf cantidad total de un artículo sumando solo bodegas activas.
// Los transfers netean a cero entre su pareja, así que el total del sistema
// no cambia con una transferencia entre bodegas activas.
func TotalOf(movements []*entity.Movement, itemID string, isActiveWarehouse func(warehouseID string) bool) int64 {
	var total int64
	for _, m := range movements {
		if m.ItemID == itemID && isActiveWarehouse(m.WarehouseID) {
			total += Delta(m)
		}
	}
	return total
}
