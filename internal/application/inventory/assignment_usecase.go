package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/hotel-stock/internal/application/dto"
	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
	"github.com/tu-usuario/hotel-stock/internal/domain"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
)

// AssignmentUseCase reglas de responsabilidad. Las reglas pueden solaparse;
// quién gana lo decide la cascada del resolver, no este caso de uso.
type AssignmentUseCase struct {
	store     docstore.Store
	view      *ledger.Service
	picklists *PicklistUseCase
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(store docstore.Store, view *ledger.Service, picklists *PicklistUseCase) *AssignmentUseCase {
	return &AssignmentUseCase{store: store, view: view, picklists: picklists}
}

// Create valida los campos requeridos por tipo:
//
//   - category: categoría obligatoria
//   - warehouse: bodega obligatoria (y debe existir)
//   - combined: ambas
func (uc *AssignmentUseCase) Create(ctx context.Context, in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	managerName := strings.TrimSpace(in.Manager)
	if managerName == "" || !entity.IsValidAssignmentType(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	needsCategory := in.Type == entity.AssignmentTypeCategory || in.Type == entity.AssignmentTypeCombined
	needsWarehouse := in.Type == entity.AssignmentTypeWarehouse || in.Type == entity.AssignmentTypeCombined

	if needsCategory {
		if !entity.IsValidCategory(in.Category) {
			return nil, domain.ErrInvalidInput
		}
	} else {
		in.Category = ""
	}
	if needsWarehouse {
		if _, err := uc.view.Warehouse(in.WarehouseID); err != nil {
			return nil, err
		}
	} else {
		in.WarehouseID = ""
	}

	a := &entity.ManagerAssignment{
		ID:          uuid.New().String(),
		Manager:     managerName,
		Type:        in.Type,
		Category:    in.Category,
		WarehouseID: in.WarehouseID,
		CreatedAt:   time.Now(),
	}

	ops := make([]docstore.Op, 0, 2)
	op, err := docstore.Upsert(docstore.CollAssignments, a.ID, a)
	if err != nil {
		return nil, err
	}
	ops = append(ops, op)
	if plOp, ok, err := uc.picklists.EnsureOp(entity.PicklistManagers, managerName); err == nil && ok {
		ops = append(ops, plOp)
	}

	if err := uc.store.Apply(ctx, ops); err != nil {
		return nil, err
	}
	return toAssignmentResponse(a), nil
}

// Delete elimina la regla.
func (uc *AssignmentUseCase) Delete(ctx context.Context, id string) error {
	for _, a := range uc.view.Assignments() {
		if a.ID == id {
			return uc.store.Apply(ctx, []docstore.Op{docstore.Delete(docstore.CollAssignments, id)})
		}
	}
	return domain.ErrNotFound
}

// List todas las reglas.
func (uc *AssignmentUseCase) List() []*dto.AssignmentResponse {
	assignments := uc.view.Assignments()
	out := make([]*dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, toAssignmentResponse(a))
	}
	return out
}

// ManagerStats acumula por responsable cuántos artículos y cuánto stock le
// tocan según el desglose por bodega (alimenta los gráficos del dashboard).
func (uc *AssignmentUseCase) ManagerStats() []dto.ManagerStatsDTO {
	type acc struct {
		items int
		stock int64
	}
	accum := make(map[string]*acc)

	for _, it := range uc.view.Items() {
		breakdowns, err := uc.view.AllManagersOf(it.ID)
		if err != nil {
			continue
		}
		for _, b := range breakdowns {
			a := accum[b.Manager]
			if a == nil {
				a = &acc{}
				accum[b.Manager] = a
			}
			a.items++
			for _, whName := range b.Warehouses {
				for _, w := range uc.view.Warehouses() {
					if w.Name == whName {
						a.stock += uc.view.StockOf(it.ID, w.ID)
					}
				}
			}
		}
	}

	out := make([]dto.ManagerStatsDTO, 0, len(accum))
	for m, a := range accum {
		out = append(out, dto.ManagerStatsDTO{Manager: m, ItemCount: a.items, TotalStock: a.stock})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Manager < out[j].Manager })
	return out
}

func toAssignmentResponse(a *entity.ManagerAssignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		ID:          a.ID,
		Manager:     a.Manager,
		Type:        a.Type,
		Category:    a.Category,
		WarehouseID: a.WarehouseID,
		CreatedAt:   a.CreatedAt,
	}
}
