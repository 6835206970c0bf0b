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

// TransferUseCase coordina una transferencia entre bodegas: una acción del
// usuario produce dos movimientos transfer enlazados y con signos opuestos,
// escritos en un solo lote. El stock total del sistema no cambia.
type TransferUseCase struct {
	store     docstore.Store
	view      *ledger.Service
	picklists *PicklistUseCase
}

// NewTransferUseCase construye el coordinador.
func NewTransferUseCase(store docstore.Store, view *ledger.Service, picklists *PicklistUseCase) *TransferUseCase {
	return &TransferUseCase{store: store, view: view, picklists: picklists}
}

// Transfer valida (cantidad > 0, origen != destino, artículo y ambas bodegas
// existentes) y escribe la pareja:
//
//   - origen:  quantity = -q, warehouse = from, target = to
//   - destino: quantity = +q, warehouse = to,   target = from
//
// Cada pata referencia a la otra vía LinkedMovementID y ambas comparten
// fecha, operador y lote (vencimiento). No se exige que las bodegas estén
// activas: el sistema original permite mover stock saliendo de una bodega
// desactivada.
func (uc *TransferUseCase) Transfer(ctx context.Context, in dto.TransferRequest) ([]*dto.MovementResponse, error) {
	if in.ItemID == "" || in.FromWarehouseID == "" || in.ToWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.view.Item(in.ItemID); err != nil {
		return nil, err
	}
	if _, err := uc.view.Warehouse(in.FromWarehouseID); err != nil {
		return nil, err
	}
	if _, err := uc.view.Warehouse(in.ToWarehouseID); err != nil {
		return nil, err
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

	operator := strings.TrimSpace(in.Operator)
	outID := uuid.New().String()
	inID := uuid.New().String()

	outMov := &entity.Movement{
		ID:                outID,
		ItemID:            in.ItemID,
		WarehouseID:       in.FromWarehouseID,
		Type:              entity.MovementTypeTransfer,
		Quantity:          -in.Quantity,
		ExpiryDate:        in.ExpiryDate,
		Date:              date,
		Operator:          operator,
		Note:              in.Note,
		TargetWarehouseID: in.ToWarehouseID,
		LinkedMovementID:  inID,
		CreatedAt:         now,
	}
	inMov := &entity.Movement{
		ID:                inID,
		ItemID:            in.ItemID,
		WarehouseID:       in.ToWarehouseID,
		Type:              entity.MovementTypeTransfer,
		Quantity:          in.Quantity,
		ExpiryDate:        in.ExpiryDate,
		Date:              date,
		Operator:          operator,
		Note:              in.Note,
		TargetWarehouseID: in.FromWarehouseID,
		LinkedMovementID:  outID,
		CreatedAt:         now,
	}

	ops := make([]docstore.Op, 0, 3)
	outOp, err := docstore.Upsert(docstore.CollMovements, outMov.ID, outMov)
	if err != nil {
		return nil, err
	}
	inOp, err := docstore.Upsert(docstore.CollMovements, inMov.ID, inMov)
	if err != nil {
		return nil, err
	}
	ops = append(ops, outOp, inOp)
	if op, ok, err := uc.picklists.EnsureOp(entity.PicklistOperators, operator); err == nil && ok {
		ops = append(ops, op)
	}

	// Ambas patas en un solo Apply: atómico donde el backend lo permite.
	if err := uc.store.Apply(ctx, ops); err != nil {
		return nil, err
	}
	return []*dto.MovementResponse{toMovementResponse(outMov), toMovementResponse(inMov)}, nil
}
