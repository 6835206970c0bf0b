package entity

import "time"

// Tipos de regla de asignación de responsable.
const (
	AssignmentTypeCategory  = "category"  // por categoría, en cualquier bodega
	AssignmentTypeWarehouse = "warehouse" // por bodega, cualquier categoría
	AssignmentTypeCombined  = "combined"  // bodega + categoría (la más específica)
)

// ManagerAssignment es una regla de responsabilidad organizacional. Pueden
// coexistir reglas solapadas; la cascada de resolución (combined > category >
// warehouse) elige la primera que aplique por bodega.
type ManagerAssignment struct {
	ID          string    `json:"id"`
	Manager     string    `json:"manager"`
	Type        string    `json:"type"`
	Category    string    `json:"category,omitempty"`     // requerido si type es category o combined
	WarehouseID string    `json:"warehouse_id,omitempty"` // requerido si type es warehouse o combined
	CreatedAt   time.Time `json:"created_at"`
}

// IsValidAssignmentType indica si el tipo de regla es conocido.
func IsValidAssignmentType(t string) bool {
	switch t {
	case AssignmentTypeCategory, AssignmentTypeWarehouse, AssignmentTypeCombined:
		return true
	}
	return false
}
