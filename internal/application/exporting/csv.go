package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
	"github.com/tu-usuario/hotel-stock/internal/domain"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/manager"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
)

// Formato CSV heredado de la hoja de cálculo del hotel. El BOM es necesario
// para que Excel abra el archivo UTF-8 con los caracteres chinos correctos.
const csvBOM = "\ufeff"

var csvHeader = []string{"類別", "負責人", "物品名稱", "盤點頻率", "倉庫別", "數量"}

func frequencyLabelFunc(f string) string {
	return entity.FrequencyLabel(f)
}

// CSVUseCase exporta e importa el inventario en el formato legado.
type CSVUseCase struct {
	store docstore.Store
	view  *ledger.Service
}

// NewCSVUseCase construye el caso de uso.
func NewCSVUseCase(store docstore.Store, view *ledger.Service) *CSVUseCase {
	return &CSVUseCase{store: store, view: view}
}

// Export vuelca el inventario completo: un renglón por (artículo, bodega
// activa) con stock distinto de cero. Columnas en el orden de la hoja
// original; frecuencia abreviada a un carácter.
func (uc *CSVUseCase) Export() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(csvBOM)
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("escribir encabezado CSV: %w", err)
	}

	assignments := uc.view.Assignments()
	for _, it := range uc.view.Items() {
		for _, wh := range uc.view.Warehouses() {
			if !wh.IsActive {
				continue
			}
			qty := uc.view.StockOf(it.ID, wh.ID)
			if qty == 0 {
				continue
			}
			m, ok := manager.ForWarehouse(assignments, wh.ID, it.Category)
			if !ok {
				m = ""
			}
			row := []string{
				it.Category,
				m,
				it.Name,
				entity.FrequencyCode(it.Frequency),
				wh.Name,
				strconv.FormatInt(qty, 10),
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("escribir renglón CSV: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("volcar CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportSummary resultado de una importación.
type ImportSummary struct {
	ItemsCreated       int `json:"itemsCreated"`
	WarehousesCreated  int `json:"warehousesCreated"`
	MovementsWritten   int `json:"movementsWritten"`
	AssignmentsCreated int `json:"assignmentsCreated"`
	RowsSkipped        int `json:"rowsSkipped"`
}

// Import lee un CSV en el formato legado y lo reconcilia contra el estado
// actual:
//
//   - la bodega se busca por nombre y se crea si falta (inactiva nunca: las
//     nuevas nacen activas en housekeeping)
//   - el artículo se empata por (nombre, categoría) y se crea si falta
//   - la cantidad importada se alcanza con un movimiento adjust por la
//     diferencia contra el stock en libros (cero diferencia = sin movimiento)
//   - si viene responsable y ninguna regla resuelve para esa bodega y
//     categoría, se crea una regla combined
//
// Todo el archivo se aplica en un solo lote: o entra completo o no entra.
// Renglones malformados o con categoría desconocida se saltan y se cuentan.
func (uc *CSVUseCase) Import(ctx context.Context, r io.Reader, operator string) (*ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// El BOM queda pegado a la primera celda si el archivo lo trae.
	rows[0][0] = strings.TrimPrefix(rows[0][0], csvBOM)
	if isHeaderRow(rows[0]) {
		rows = rows[1:]
	}

	now := time.Now()
	today := now.Format(entity.DateLayout)
	operator = strings.TrimSpace(operator)

	summary := &ImportSummary{}
	var ops []docstore.Op

	// Estado pendiente del propio lote: bodegas y artículos creados por
	// renglones anteriores del mismo archivo, y el stock que llevan.
	whByName := make(map[string]*entity.Warehouse)
	for _, w := range uc.view.Warehouses() {
		whByName[w.Name] = w
	}
	type itemKey struct{ name, category string }
	itemByKey := make(map[itemKey]*entity.Item)
	for _, it := range uc.view.Items() {
		itemByKey[itemKey{it.Name, it.Category}] = it
	}
	pendingStock := make(map[string]int64) // itemID+"/"+warehouseID
	assigned := make(map[string]bool)      // warehouseID+"/"+category con regla nueva

	assignments := uc.view.Assignments()

	for _, row := range rows {
		if len(row) < 6 {
			summary.RowsSkipped++
			continue
		}
		category := strings.TrimSpace(row[0])
		managerName := strings.TrimSpace(row[1])
		name := strings.TrimSpace(row[2])
		frequency := entity.FrequencyFromCode(strings.TrimSpace(row[3]))
		whName := strings.TrimSpace(row[4])
		qty, qtyErr := strconv.ParseInt(strings.TrimSpace(row[5]), 10, 64)

		if name == "" || whName == "" || qtyErr != nil || !entity.IsValidCategory(category) {
			summary.RowsSkipped++
			continue
		}

		wh := whByName[whName]
		if wh == nil {
			wh = &entity.Warehouse{
				ID:         uuid.New().String(),
				Code:       whName,
				Name:       whName,
				Department: entity.DepartmentHousekeeping,
				IsActive:   true,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			op, err := docstore.Upsert(docstore.CollWarehouses, wh.ID, wh)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
			whByName[whName] = wh
			summary.WarehousesCreated++
		}

		key := itemKey{name, category}
		item := itemByKey[key]
		if item == nil {
			item = &entity.Item{
				ID:        uuid.New().String(),
				Name:      name,
				Category:  category,
				Frequency: frequency,
				CreatedAt: now,
				UpdatedAt: now,
			}
			op, err := docstore.Upsert(docstore.CollItems, item.ID, item)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
			itemByKey[key] = item
			summary.ItemsCreated++
		}

		stockKey := item.ID + "/" + wh.ID
		current, seen := pendingStock[stockKey]
		if !seen {
			current = uc.view.StockOf(item.ID, wh.ID)
		}
		if diff := qty - current; diff != 0 {
			mov := &entity.Movement{
				ID:          uuid.New().String(),
				ItemID:      item.ID,
				WarehouseID: wh.ID,
				Type:        entity.MovementTypeAdjust,
				Quantity:    diff,
				Date:        today,
				Operator:    operator,
				Note:        "CSV匯入",
				CreatedAt:   now,
			}
			op, err := docstore.Upsert(docstore.CollMovements, mov.ID, mov)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
			summary.MovementsWritten++
		}
		pendingStock[stockKey] = qty

		if managerName != "" && !assigned[wh.ID+"/"+category] {
			if _, ok := manager.ForWarehouse(assignments, wh.ID, category); !ok {
				a := &entity.ManagerAssignment{
					ID:          uuid.New().String(),
					Manager:     managerName,
					Type:        entity.AssignmentTypeCombined,
					Category:    category,
					WarehouseID: wh.ID,
					CreatedAt:   now,
				}
				op, err := docstore.Upsert(docstore.CollAssignments, a.ID, a)
				if err != nil {
					return nil, err
				}
				ops = append(ops, op)
				assigned[wh.ID+"/"+category] = true
				summary.AssignmentsCreated++
			}
		}
	}

	if len(ops) == 0 {
		return summary, nil
	}
	if err := uc.store.Apply(ctx, ops); err != nil {
		return nil, err
	}
	return summary, nil
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.TrimSpace(row[0]) == csvHeader[0]
}
