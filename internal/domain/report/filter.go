// Package report selecciona qué artículos y bodegas entran en una hoja de
// conteo físico, según el nivel de frecuencia (inclusión acumulativa) y el
// alcance (todo, por departamento o por bodega).
package report

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/manager"
)

// Scope alcance del reporte. Cero valor = todas las bodegas activas.
// Department y WarehouseID son excluyentes; WarehouseID gana si ambos vienen.
type Scope struct {
	Department  string
	WarehouseID string
}

// Line un renglón de la hoja: artículo + cantidad en libros en esa bodega.
// Las columnas de conteo físico y diferencia van en blanco (se llenan a mano).
type Line struct {
	Item     *entity.Item
	Manager  string // responsable resuelto para esta bodega
	Quantity int64
}

// Section una bodega con sus renglones.
type Section struct {
	Warehouse *entity.Warehouse
	Lines     []Line
}

// TierLabel etiqueta zh-Hant del tipo de conteo.
func TierLabel(tier string) string {
	switch tier {
	case entity.FrequencyMonthly:
		return "月盤"
	case entity.FrequencyQuarterly:
		return "季盤"
	case entity.FrequencySemiannual:
		return "半年盤"
	default:
		return "年盤"
	}
}

// includesFrequency inclusión acumulativa: el nivel T arrastra toda
// frecuencia de rango <= rank(T). Un conteo trimestral re-verifica lo que se
// cuenta cada mes, así que lo mensual entra solo.
func includesFrequency(tier, frequency string) bool {
	return entity.FrequencyRank(frequency) <= entity.FrequencyRank(tier)
}

// Select arma las secciones del reporte: primero estrecha el conjunto de
// bodegas activas según el alcance, luego incluye por bodega los artículos
// del nivel con stock distinto de cero ahí. Artículos con stock cero en todo
// el alcance quedan fuera del impreso (no se borran).
//
// Las secciones se ordenan por nombre de bodega con colación zh-Hant y los
// renglones por categoría y nombre.
func Select(tier string, scope Scope, items []*entity.Item, warehouses []*entity.Warehouse, assignments []*entity.ManagerAssignment, stockOf manager.StockFunc) []Section {
	var scoped []*entity.Warehouse
	for _, w := range warehouses {
		if !w.IsActive {
			continue
		}
		if scope.WarehouseID != "" {
			if w.ID != scope.WarehouseID {
				continue
			}
		} else if scope.Department != "" && w.Department != scope.Department {
			continue
		}
		scoped = append(scoped, w)
	}

	col := collate.New(language.TraditionalChinese)
	sort.SliceStable(scoped, func(i, j int) bool {
		return col.CompareString(scoped[i].Name, scoped[j].Name) < 0
	})

	var sections []Section
	for _, w := range scoped {
		var lines []Line
		for _, it := range items {
			if !includesFrequency(tier, it.Frequency) {
				continue
			}
			qty := stockOf(it.ID, w.ID)
			if qty == 0 {
				continue
			}
			m, ok := manager.ForWarehouse(assignments, w.ID, it.Category)
			if !ok {
				m = manager.Unassigned
			}
			lines = append(lines, Line{Item: it, Manager: m, Quantity: qty})
		}
		if len(lines) == 0 {
			continue
		}
		sort.SliceStable(lines, func(i, j int) bool {
			if lines[i].Item.Category != lines[j].Item.Category {
				return col.CompareString(lines[i].Item.Category, lines[j].Item.Category) < 0
			}
			return col.CompareString(lines[i].Item.Name, lines[j].Item.Name) < 0
		})
		sections = append(sections, Section{Warehouse: w, Lines: lines})
	}
	return sections
}

// TotalLines cantidad total de renglones del reporte (para el encabezado).
func TotalLines(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Lines)
	}
	return n
}
