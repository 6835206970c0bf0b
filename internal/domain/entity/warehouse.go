package entity

import "time"

// Departamentos a los que puede pertenecer una bodega.
const (
	DepartmentFrontDesk    = "front-desk"
	DepartmentHousekeeping = "housekeeping"
	DepartmentFNB          = "fnb"
	DepartmentAdmin        = "admin"
)

// Departments conjunto enumerado de departamentos.
var Departments = []string{
	DepartmentFrontDesk,
	DepartmentHousekeeping,
	DepartmentFNB,
	DepartmentAdmin,
}

// IsValidDepartment indica si el departamento es uno de los conocidos.
func IsValidDepartment(d string) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

// Warehouse representa una bodega física (multi-bodega).
// Una bodega inactiva se excluye de la agregación de stock, de los filtros y
// de nuevos movimientos, pero sus movimientos históricos se conservan.
type Warehouse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"` // etiqueta corta: FD, FD-B1...
	Name       string    `json:"name"`
	Floor      string    `json:"floor"`
	Department string    `json:"department"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
