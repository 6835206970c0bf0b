package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
	"github.com/tu-usuario/hotel-stock/internal/domain"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
)

// PicklistUseCase servicio de datos de referencia: las listas de sugerencias
// (managerList, operatorList, unitList) crecen por append-si-falta desde la
// frontera de validación, no desde cada handler por su cuenta.
type PicklistUseCase struct {
	store docstore.Store
	view  *ledger.Service
}

// NewPicklistUseCase construye el caso de uso.
func NewPicklistUseCase(store docstore.Store, view *ledger.Service) *PicklistUseCase {
	return &PicklistUseCase{store: store, view: view}
}

// Values devuelve los valores de la lista.
func (uc *PicklistUseCase) Values(list string) ([]string, error) {
	if !isKnownList(list) {
		return nil, domain.ErrNotFound
	}
	return uc.view.Picklist(list), nil
}

// Ensure agrega el valor a la lista si aún no está.
func (uc *PicklistUseCase) Ensure(ctx context.Context, list, value string) error {
	op, ok, err := uc.EnsureOp(list, value)
	if err != nil || !ok {
		return err
	}
	return uc.store.Apply(ctx, []docstore.Op{op})
}

// EnsureOp construye la Op de alta si el valor falta (ok=false si ya existe
// o el valor es vacío). Permite a otros casos de uso incluir el alta en su
// mismo lote atómico.
func (uc *PicklistUseCase) EnsureOp(list, value string) (docstore.Op, bool, error) {
	if !isKnownList(list) {
		return docstore.Op{}, false, domain.ErrNotFound
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return docstore.Op{}, false, nil
	}
	for _, v := range uc.view.Picklist(list) {
		if v == value {
			return docstore.Op{}, false, nil
		}
	}
	entry := &entity.PicklistEntry{
		ID:        uuid.New().String(),
		Value:     value,
		CreatedAt: time.Now(),
	}
	op, err := docstore.Upsert(list, entry.ID, entry)
	if err != nil {
		return docstore.Op{}, false, err
	}
	return op, true, nil
}

func isKnownList(list string) bool {
	switch list {
	case entity.PicklistManagers, entity.PicklistOperators, entity.PicklistUnits:
		return true
	}
	return false
}
