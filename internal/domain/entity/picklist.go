package entity

import "time"

// Nombres de las listas de sugerencias (crecen por append-si-falta, sin esquema).
const (
	PicklistManagers  = "managerList"
	PicklistOperators = "operatorList"
	PicklistUnits     = "unitList"
)

// DefaultManagers semilla de la lista de responsables (valores del sistema
// original del hotel; se restauran al limpiar los datos).
var DefaultManagers = []string{"Nick", "Wendy", "夜班", "Irene", "Cammy"}

// PicklistEntry un valor sugerido dentro de una lista (managerList,
// operatorList o unitList).
type PicklistEntry struct {
	ID        string    `json:"id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
