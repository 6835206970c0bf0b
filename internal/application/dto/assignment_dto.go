package dto

import "time"

// CreateAssignmentRequest body para POST /api/assignments.
type CreateAssignmentRequest struct {
	Manager     string `json:"manager"`
	Type        string `json:"type"` // category, warehouse, combined
	Category    string `json:"category,omitempty"`
	WarehouseID string `json:"warehouse_id,omitempty"`
}

// AssignmentResponse regla de asignación en respuestas.
type AssignmentResponse struct {
	ID          string    `json:"id"`
	Manager     string    `json:"manager"`
	Type        string    `json:"type"`
	Category    string    `json:"category,omitempty"`
	WarehouseID string    `json:"warehouse_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ManagerStatsDTO estadísticas por responsable (alimenta los gráficos).
type ManagerStatsDTO struct {
	Manager    string `json:"manager"`
	ItemCount  int    `json:"item_count"`
	TotalStock int64  `json:"total_stock"`
}
