package dto

import "time"

// RegisterMovementRequest body para POST /api/movements (in, out, adjust).
type RegisterMovementRequest struct {
	ItemID      string `json:"item_id"`
	WarehouseID string `json:"warehouse_id"`
	Type        string `json:"type"`
	Quantity    int64  `json:"quantity"`
	Date        string `json:"date"` // fecha de negocio YYYY-MM-DD; vacía = hoy
	Operator    string `json:"operator"`
	Note        string `json:"note,omitempty"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
}

// TransferRequest body para POST /api/transfers.
type TransferRequest struct {
	ItemID          string `json:"item_id"`
	FromWarehouseID string `json:"from_warehouse_id"`
	ToWarehouseID   string `json:"to_warehouse_id"`
	Quantity        int64  `json:"quantity"` // magnitud, siempre > 0
	Date            string `json:"date"`
	Operator        string `json:"operator"`
	Note            string `json:"note,omitempty"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
}

// MovementResponse evento del ledger en respuestas.
type MovementResponse struct {
	ID                string    `json:"id"`
	ItemID            string    `json:"item_id"`
	WarehouseID       string    `json:"warehouse_id"`
	Type              string    `json:"type"`
	Quantity          int64     `json:"quantity"`
	Date              string    `json:"date"`
	Operator          string    `json:"operator"`
	Note              string    `json:"note,omitempty"`
	ExpiryDate        string    `json:"expiry_date,omitempty"`
	TargetWarehouseID string    `json:"target_warehouse_id,omitempty"`
	LinkedMovementID  string    `json:"linked_movement_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// StockResponse respuesta de GET /api/stock.
type StockResponse struct {
	ItemID      string `json:"item_id"`
	WarehouseID string `json:"warehouse_id,omitempty"`
	Quantity    int64  `json:"quantity"`
}
