package dto

import "time"

// CreateItemRequest body para POST /api/items.
// InitialWarehouseID + InitialQuantity opcionales: si vienen, se escribe un
// movimiento in inicial en esa bodega.
type CreateItemRequest struct {
	Name               string `json:"name"`
	Category           string `json:"category"`
	Unit               string `json:"unit"`
	Frequency          string `json:"frequency"`
	InitialWarehouseID string `json:"initial_warehouse_id,omitempty"`
	InitialQuantity    int64  `json:"initial_quantity,omitempty"`
	Operator           string `json:"operator,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id (solo campos presentes).
type UpdateItemRequest struct {
	Name      *string `json:"name,omitempty"`
	Category  *string `json:"category,omitempty"`
	Unit      *string `json:"unit,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
}

// WarehouseStockDTO stock de un artículo en una bodega concreta.
type WarehouseStockDTO struct {
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      int64  `json:"quantity"`
}

// ItemResponse artículo con su stock derivado y responsable resuelto.
type ItemResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Category   string              `json:"category"`
	Unit       string              `json:"unit"`
	Frequency  string              `json:"frequency"`
	TotalStock int64               `json:"total_stock"`
	Manager    string              `json:"manager"`
	Stocks     []WarehouseStockDTO `json:"stocks,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ManagerBreakdownDTO un responsable con sus bodegas (con stock del artículo).
type ManagerBreakdownDTO struct {
	Manager    string   `json:"manager"`
	Warehouses []string `json:"warehouses"`
}
