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

// MovementUseCase registra movimientos simples (in, out, adjust) en el
// ledger. Una vez escrito, un movimiento es permanente: la corrección es
// otro movimiento adjust, nunca editar la historia.
type MovementUseCase struct {
	store     docstore.Store
	view      *ledger.Service
	picklists *PicklistUseCase
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(store docstore.Store, view *ledger.Service, picklists *PicklistUseCase) *MovementUseCase {
	return &MovementUseCase{store: store, view: view, picklists: picklists}
}

// Register valida en la frontera y apendea el movimiento:
//
//   - in y out exigen cantidad > 0 (out se guarda como magnitud)
//   - adjust exige cantidad != 0 (negativo = corrección a la baja)
//   - la bodega debe existir y estar activa (inactivas no reciben
//     movimientos nuevos)
//
// Los transfers no pasan por aquí: ver TransferUseCase.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	switch in.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut:
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeAdjust:
		if in.Quantity == 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.ItemID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.view.Item(in.ItemID); err != nil {
		return nil, err
	}
	w, err := uc.view.Warehouse(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if !w.IsActive {
		return nil, domain.ErrInactive
	}

	now := time.Now()
	date, err := businessDate(in.Date, now)
	if err != nil {
		return nil, err
	}
	if in.ExpiryDate != "" {
		if _, err := time.Parse(entity.DateLayout, in.ExpiryDate); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	mov := &entity.Movement{
		ID:          uuid.New().String(),
		ItemID:      in.ItemID,
		WarehouseID: in.WarehouseID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		ExpiryDate:  in.ExpiryDate,
		Date:        date,
		Operator:    strings.TrimSpace(in.Operator),
		Note:        in.Note,
		CreatedAt:   now,
	}

	ops := make([]docstore.Op, 0, 2)
	movOp, err := docstore.Upsert(docstore.CollMovements, mov.ID, mov)
	if err != nil {
		return nil, err
	}
	ops = append(ops, movOp)
	if op, ok, err := uc.picklists.EnsureOp(entity.PicklistOperators, mov.Operator); err == nil && ok {
		ops = append(ops, op)
	}

	if err := uc.store.Apply(ctx, ops); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// List movimientos del ledger, filtrables por artículo, bodega y tipo.
func (uc *MovementUseCase) List(itemID, warehouseID, movType string) []*dto.MovementResponse {
	movements := uc.view.Movements()
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		if itemID != "" && m.ItemID != itemID {
			continue
		}
		if warehouseID != "" && m.WarehouseID != warehouseID {
			continue
		}
		if movType != "" && m.Type != movType {
			continue
		}
		out = append(out, toMovementResponse(m))
	}
	return out
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:                m.ID,
		ItemID:            m.ItemID,
		WarehouseID:       m.WarehouseID,
		Type:              m.Type,
		Quantity:          m.Quantity,
		Date:              m.Date,
		Operator:          m.Operator,
		Note:              m.Note,
		ExpiryDate:        m.ExpiryDate,
		TargetWarehouseID: m.TargetWarehouseID,
		LinkedMovementID:  m.LinkedMovementID,
		CreatedAt:         m.CreatedAt,
	}
}

// businessDate valida la fecha de negocio o usa la de hoy si viene vacía.
func businessDate(date string, now time.Time) (string, error) {
	if date == "" {
		return now.Format(entity.DateLayout), nil
	}
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return "", domain.ErrInvalidInput
	}
	return date, nil
}
