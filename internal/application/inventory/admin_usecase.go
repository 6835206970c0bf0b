package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
)

// AdminUseCase operaciones administrativas destructivas.
type AdminUseCase struct {
	store docstore.Store
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(store docstore.Store) *AdminUseCase {
	return &AdminUseCase{store: store}
}

// ClearAll borra todas las colecciones y restaura la semilla de la lista de
// responsables. Operación irreversible; el handler exige confirmación
// explícita antes de llegar aquí.
func (uc *AdminUseCase) ClearAll(ctx context.Context) error {
	var ops []docstore.Op
	for _, collection := range docstore.Collections {
		records, err := uc.store.GetAll(ctx, collection)
		if err != nil {
			return err
		}
		for id := range records {
			ops = append(ops, docstore.Delete(collection, id))
		}
	}

	now := time.Now()
	for _, name := range entity.DefaultManagers {
		entry := &entity.PicklistEntry{
			ID:        uuid.New().String(),
			Value:     name,
			CreatedAt: now,
		}
		op, err := docstore.Upsert(entity.PicklistManagers, entry.ID, entry)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	return uc.store.Apply(ctx, ops)
}
