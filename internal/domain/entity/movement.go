package entity

import "time"

// Tipos de movimiento del ledger.
const (
	MovementTypeIn       = "in"       // entrada
	MovementTypeOut      = "out"      // salida
	MovementTypeAdjust   = "adjust"   // ajuste (puede ser negativo)
	MovementTypeTransfer = "transfer" // entre bodegas, siempre en pareja
)

// DateLayout formato de la fecha de negocio (fecha calendario local, sin hora).
const DateLayout = "2006-01-02"

// Movement es un evento inmutable del ledger de stock. Nunca se edita ni se
// borra individualmente; solo se elimina en cascada al borrar su artículo o
// bodega. La corrección de un error se hace con un movimiento adjust
// compensatorio, nunca mutando la historia.
//
// Quantity es entero con signo y su significado depende de Type (ver el
// fold en internal/domain/stock). En un transfer el valor ya viene firmado:
// negativo en la bodega origen, positivo en la destino.
type Movement struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	WarehouseID string `json:"warehouse_id"`
	Type        string `json:"type"`
	Quantity    int64  `json:"quantity"`
	ExpiryDate  string `json:"expiry_date,omitempty"` // opcional, lotes FIFO
	Date        string `json:"date"`                  // fecha de negocio, DateLayout
	Operator    string `json:"operator"`
	Note        string `json:"note,omitempty"`

	// Solo para Type == transfer: la otra bodega y el movimiento pareja.
	TargetWarehouseID string `json:"target_warehouse_id,omitempty"`
	LinkedMovementID  string `json:"linked_movement_id,omitempty"`

	// Timestamp real de creación; solo ordena, nunca filtra por fecha de negocio.
	CreatedAt time.Time `json:"created_at"`
}
