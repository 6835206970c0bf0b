package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/hotel-stock/internal/application/dto"
	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
	"github.com/tu-usuario/hotel-stock/internal/domain"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/manager"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
)

// ItemUseCase CRUD de artículos. Toda validación ocurre aquí, antes de
// cualquier escritura; no hay escritos parciales.
type ItemUseCase struct {
	store     docstore.Store
	view      *ledger.Service
	picklists *PicklistUseCase
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(store docstore.Store, view *ledger.Service, picklists *PicklistUseCase) *ItemUseCase {
	return &ItemUseCase{store: store, view: view, picklists: picklists}
}

// Create valida y crea el artículo. Si viene bodega y cantidad inicial,
// escribe además el movimiento in inicial en el mismo lote atómico.
// Duplicado = mismo (nombre, categoría) que un artículo existente.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	frequency := in.Frequency
	if frequency == "" {
		frequency = entity.FrequencyMonthly
	}
	if !entity.IsValidFrequency(frequency) {
		return nil, domain.ErrInvalidInput
	}
	for _, existing := range uc.view.Items() {
		if existing.Name == name && existing.Category == in.Category {
			return nil, domain.ErrDuplicate
		}
	}

	var initialWh *entity.Warehouse
	if in.InitialWarehouseID != "" {
		w, err := uc.view.Warehouse(in.InitialWarehouseID)
		if err != nil {
			return nil, err
		}
		if !w.IsActive {
			return nil, domain.ErrInactive
		}
		if in.InitialQuantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		initialWh = w
	}

	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  in.Category,
		Unit:      strings.TrimSpace(in.Unit),
		Frequency: frequency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ops := make([]docstore.Op, 0, 4)
	itemOp, err := docstore.Upsert(docstore.CollItems, item.ID, item)
	if err != nil {
		return nil, err
	}
	ops = append(ops, itemOp)

	if initialWh != nil {
		mov := &entity.Movement{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			WarehouseID: initialWh.ID,
			Type:        entity.MovementTypeIn,
			Quantity:    in.InitialQuantity,
			Date:        now.Format(entity.DateLayout),
			Operator:    strings.TrimSpace(in.Operator),
			Note:        "初始庫存",
			CreatedAt:   now,
		}
		movOp, err := docstore.Upsert(docstore.CollMovements, mov.ID, mov)
		if err != nil {
			return nil, err
		}
		ops = append(ops, movOp)
	}

	if item.Unit != "" {
		if op, ok, err := uc.picklists.EnsureOp(entity.PicklistUnits, item.Unit); err == nil && ok {
			ops = append(ops, op)
		}
	}
	if op, ok, err := uc.picklists.EnsureOp(entity.PicklistOperators, in.Operator); err == nil && ok {
		ops = append(ops, op)
	}

	if err := uc.store.Apply(ctx, ops); err != nil {
		return nil, err
	}
	return uc.toResponse(item, false), nil
}

// Update edita nombre, categoría, unidad o frecuencia. La cantidad nunca se
// edita aquí: eso es un movimiento.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	current, err := uc.view.Item(id)
	if err != nil {
		return nil, err
	}
	updated := *current
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		updated.Name = name
	}
	if in.Category != nil {
		if !entity.IsValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		updated.Category = *in.Category
	}
	if in.Unit != nil {
		updated.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.Frequency != nil {
		if !entity.IsValidFrequency(*in.Frequency) {
			return nil, domain.ErrInvalidInput
		}
		updated.Frequency = *in.Frequency
	}
	for _, existing := range uc.view.Items() {
		if existing.ID != id && existing.Name == updated.Name && existing.Category == updated.Category {
			return nil, domain.ErrDuplicate
		}
	}
	updated.UpdatedAt = time.Now()

	op, err := docstore.Upsert(docstore.CollItems, updated.ID, &updated)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Apply(ctx, []docstore.Op{op}); err != nil {
		return nil, err
	}
	return uc.toResponse(&updated, false), nil
}

// Delete borra el artículo y, en cascada, todos los movimientos que lo
// referencian (borrado duro, sin lápidas), en un solo lote.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.view.Item(id); err != nil {
		return err
	}
	ops := []docstore.Op{docstore.Delete(docstore.CollItems, id)}
	for _, m := range uc.view.Movements() {
		if m.ItemID == id {
			ops = append(ops, docstore.Delete(docstore.CollMovements, m.ID))
		}
	}
	return uc.store.Apply(ctx, ops)
}

// Get devuelve el artículo con stock derivado por bodega y responsable.
func (uc *ItemUseCase) Get(id string) (*dto.ItemResponse, error) {
	item, err := uc.view.Item(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item, true), nil
}

// List artículos con stock total y responsable, filtrables por categoría.
func (uc *ItemUseCase) List(category string) []*dto.ItemResponse {
	items := uc.view.Items()
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, uc.toResponse(it, false))
	}
	return out
}

// Managers desglose completo de responsables del artículo.
func (uc *ItemUseCase) Managers(id string) ([]dto.ManagerBreakdownDTO, error) {
	breakdowns, err := uc.view.AllManagersOf(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManagerBreakdownDTO, 0, len(breakdowns))
	for _, b := range breakdowns {
		out = append(out, dto.ManagerBreakdownDTO{Manager: b.Manager, Warehouses: b.Warehouses})
	}
	return out, nil
}

func (uc *ItemUseCase) toResponse(item *entity.Item, withStocks bool) *dto.ItemResponse {
	resp := &dto.ItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Category:   item.Category,
		Unit:       item.Unit,
		Frequency:  item.Frequency,
		TotalStock: uc.view.TotalStockOf(item.ID),
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
	if m, err := uc.view.ManagerOf(item.ID); err == nil {
		resp.Manager = m
	} else {
		resp.Manager = manager.Unassigned
	}
	if withStocks {
		for _, w := range uc.view.Warehouses() {
			if !w.IsActive {
				continue
			}
			qty := uc.view.StockOf(item.ID, w.ID)
			if qty == 0 {
				continue
			}
			resp.Stocks = append(resp.Stocks, dto.WarehouseStockDTO{
				WarehouseID:   w.ID,
				WarehouseName: w.Name,
				Quantity:      qty,
			})
		}
	}
	return resp
}
