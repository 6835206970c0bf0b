// Package manager resuelve quién es responsable de un artículo aplicando la
// cascada de reglas de asignación sobre las bodegas que realmente tienen
// stock del artículo.
package manager

import "github.com/tu-usuario/hotel-stock/internal/domain/entity"

// Unassigned centinela cuando ninguna bodega con stock resuelve responsable.
const Unassigned = "unassigned"

// StockFunc stock actual de un artículo en una bodega (derivado del ledger).
type StockFunc func(itemID, warehouseID string) int64

// Breakdown un responsable y los nombres de las bodegas (con stock del
// artículo) que le tocan.
type Breakdown struct {
	Manager    string   `json:"manager"`
	Warehouses []string `json:"warehouses"`
}

// ForWarehouse aplica la cascada para una bodega concreta. Primera
// regla que aplica gana:
//
//  1. combined: misma bodega Y misma categoría
//  2. category: misma categoría, en cualquier bodega
//  3. warehouse: misma bodega, cualquier categoría
//
// La regla más específica (bodega+categoría) pisa a las generales: una
// delegación local puede sobreescribir la propiedad global de la categoría.
func ForWarehouse(assignments []*entity.ManagerAssignment, warehouseID, category string) (string, bool) {
	for _, a := range assignments {
		if a.Type == entity.AssignmentTypeCombined && a.WarehouseID == warehouseID && a.Category == category {
			return a.Manager, true
		}
	}
	for _, a := range assignments {
		if a.Type == entity.AssignmentTypeCategory && a.Category == category {
			return a.Manager, true
		}
	}
	for _, a := range assignments {
		if a.Type == entity.AssignmentTypeWarehouse && a.WarehouseID == warehouseID {
			return a.Manager, true
		}
	}
	return "", false
}

// qualifies indica si la bodega participa en la resolución: debe estar
// activa y tener stock distinto de cero del artículo. Nunca se atribuye
// responsabilidad sobre stock que no existe ahí.
func qualifies(w *entity.Warehouse, itemID string, stockOf StockFunc) bool {
	return w.IsActive && stockOf(itemID, w.ID) != 0
}

// Of responsable del artículo: el de la primera bodega calificada en el
// orden recibido (vista de conveniencia, no un agregado). Sin bodega
// calificada o sin regla que aplique devuelve Unassigned.
func Of(item *entity.Item, warehouses []*entity.Warehouse, assignments []*entity.ManagerAssignment, stockOf StockFunc) string {
	for _, w := range warehouses {
		if !qualifies(w, item.ID, stockOf) {
			continue
		}
		if m, ok := ForWarehouse(assignments, w.ID, item.Category); ok {
			return m
		}
	}
	return Unassigned
}

// AllOf desglose completo: cada responsable distinto con los nombres de las
// bodegas que le corresponden, en el orden de bodegas recibido. Bodegas sin
// stock del artículo quedan fuera aunque alguna regla las cubriera.
func AllOf(item *entity.Item, warehouses []*entity.Warehouse, assignments []*entity.ManagerAssignment, stockOf StockFunc) []Breakdown {
	var result []Breakdown
	index := make(map[string]int)

	for _, w := range warehouses {
		if !qualifies(w, item.ID, stockOf) {
			continue
		}
		m, ok := ForWarehouse(assignments, w.ID, item.Category)
		if !ok {
			continue
		}
		if i, seen := index[m]; seen {
			result[i].Warehouses = append(result[i].Warehouses, w.Name)
			continue
		}
		index[m] = len(result)
		result = append(result, Breakdown{Manager: m, Warehouses: []string{w.Name}})
	}
	return result
}
