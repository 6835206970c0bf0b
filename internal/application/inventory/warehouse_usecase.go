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
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
)

// WarehouseUseCase CRUD de bodegas. Desactivar una bodega la saca de la
// agregación y de nuevos movimientos pero conserva su historia; borrarla
// arrastra en cascada los movimientos que la referencian.
type WarehouseUseCase struct {
	store docstore.Store
	view  *ledger.Service
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(store docstore.Store, view *ledger.Service) *WarehouseUseCase {
	return &WarehouseUseCase{store: store, view: view}
}

// Create crea una bodega activa.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidDepartment(in.Department) {
		return nil, domain.ErrInvalidInput
	}
	for _, existing := range uc.view.Warehouses() {
		if existing.Name == name {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	w := &entity.Warehouse{
		ID:         uuid.New().String(),
		Code:       strings.TrimSpace(in.Code),
		Name:       name,
		Floor:      strings.TrimSpace(in.Floor),
		Department: in.Department,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	op, err := docstore.Upsert(docstore.CollWarehouses, w.ID, w)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Apply(ctx, []docstore.Op{op}); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// Update edita la bodega, incluido activar/desactivar.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	current, err := uc.view.Warehouse(id)
	if err != nil {
		return nil, err
	}
	updated := *current
	if in.Code != nil {
		updated.Code = strings.TrimSpace(*in.Code)
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		updated.Name = name
	}
	if in.Floor != nil {
		updated.Floor = strings.TrimSpace(*in.Floor)
	}
	if in.Department != nil {
		if !entity.IsValidDepartment(*in.Department) {
			return nil, domain.ErrInvalidInput
		}
		updated.Department = *in.Department
	}
	if in.IsActive != nil {
		updated.IsActive = *in.IsActive
	}
	updated.UpdatedAt = time.Now()

	op, err := docstore.Upsert(docstore.CollWarehouses, updated.ID, &updated)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Apply(ctx, []docstore.Op{op}); err != nil {
		return nil, err
	}
	return toWarehouseResponse(&updated), nil
}

// Delete borra la bodega y en cascada todo movimiento que la referencia,
// como bodega propia o como destino de un transfer (así la pareja de un
// transfer nunca queda coja).
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.view.Warehouse(id); err != nil {
		return err
	}
	ops := []docstore.Op{docstore.Delete(docstore.CollWarehouses, id)}
	for _, m := range uc.view.Movements() {
		if m.WarehouseID == id || m.TargetWarehouseID == id {
			ops = append(ops, docstore.Delete(docstore.CollMovements, m.ID))
		}
	}
	return uc.store.Apply(ctx, ops)
}

// Get devuelve una bodega.
func (uc *WarehouseUseCase) Get(id string) (*dto.WarehouseResponse, error) {
	w, err := uc.view.Warehouse(id)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// List bodegas; con activeOnly se omiten las desactivadas.
func (uc *WarehouseUseCase) List(activeOnly bool) []*dto.WarehouseResponse {
	whs := uc.view.Warehouses()
	out := make([]*dto.WarehouseResponse, 0, len(whs))
	for _, w := range whs {
		if activeOnly && !w.IsActive {
			continue
		}
		out = append(out, toWarehouseResponse(w))
	}
	return out
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:         w.ID,
		Code:       w.Code,
		Name:       w.Name,
		Floor:      w.Floor,
		Department: w.Department,
		IsActive:   w.IsActive,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}
