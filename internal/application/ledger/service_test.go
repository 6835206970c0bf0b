package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
	"github.com/tu-usuario/hotel-stock/internal/domain"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
	"github.com/tu-usuario/hotel-stock/pkg/logger"
)

func newView(t *testing.T) (*docstore.MemoryStore, *ledger.Service) {
	t.Helper()
	store := docstore.NewMemoryStore()
	view := ledger.NewService(store, logger.Nop())
	require.NoError(t, view.Start(context.Background()))
	t.Cleanup(view.Stop)
	return store, view
}

func upsert(t *testing.T, store *docstore.MemoryStore, collection, id string, v any) {
	t.Helper()
	op, err := docstore.Upsert(collection, id, v)
	require.NoError(t, err)
	require.NoError(t, store.Apply(context.Background(), []docstore.Op{op}))
}

// TestService_RecargaReactiva: cada escritura al almacén se refleja en el
// snapshot sin relanzar la carga inicial.
func TestService_RecargaReactiva(t *testing.T) {
	store, view := newView(t)

	assert.Empty(t, view.Items())
	upsert(t, store, docstore.CollItems, "toalla", &entity.Item{ID: "toalla", Name: "毛巾", Category: "客房備品"})

	items := view.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "毛巾", items[0].Name)

	it, err := view.Item("toalla")
	require.NoError(t, err)
	assert.Equal(t, "toalla", it.ID)

	_, err = view.Item("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestService_StockRecalculadoTrasCadaMovimiento: el memo por versión no
// sirve resultados viejos después de una recarga.
func TestService_StockRecalculadoTrasCadaMovimiento(t *testing.T) {
	store, view := newView(t)
	upsert(t, store, docstore.CollWarehouses, "hk", &entity.Warehouse{ID: "hk", Name: "房務部倉庫", IsActive: true})

	upsert(t, store, docstore.CollMovements, "m1", &entity.Movement{
		ID: "m1", ItemID: "toalla", WarehouseID: "hk", Type: entity.MovementTypeIn, Quantity: 10,
	})
	assert.Equal(t, int64(10), view.StockOf("toalla", "hk"))
	assert.Equal(t, int64(10), view.StockOf("toalla", "hk"), "la segunda lectura sale del memo")

	upsert(t, store, docstore.CollMovements, "m2", &entity.Movement{
		ID: "m2", ItemID: "toalla", WarehouseID: "hk", Type: entity.MovementTypeOut, Quantity: 3,
	})
	assert.Equal(t, int64(7), view.StockOf("toalla", "hk"), "el nuevo movimiento invalida el memo")
}

// TestService_VersionSubeConCadaRecarga.
func TestService_VersionSubeConCadaRecarga(t *testing.T) {
	store, view := newView(t)
	before := view.Version()
	upsert(t, store, docstore.CollItems, "a", &entity.Item{ID: "a", Name: "a", Category: "其他"})
	assert.Greater(t, view.Version(), before)
}

// TestService_TotalIgnoraBodegasInactivas.
func TestService_TotalIgnoraBodegasInactivas(t *testing.T) {
	store, view := newView(t)
	upsert(t, store, docstore.CollWarehouses, "hk", &entity.Warehouse{ID: "hk", Name: "房務部倉庫", IsActive: true})
	upsert(t, store, docstore.CollWarehouses, "old", &entity.Warehouse{ID: "old", Name: "舊倉庫", IsActive: false})
	upsert(t, store, docstore.CollMovements, "m1", &entity.Movement{
		ID: "m1", ItemID: "toalla", WarehouseID: "hk", Type: entity.MovementTypeIn, Quantity: 10,
	})
	upsert(t, store, docstore.CollMovements, "m2", &entity.Movement{
		ID: "m2", ItemID: "toalla", WarehouseID: "old", Type: entity.MovementTypeIn, Quantity: 99,
	})

	assert.Equal(t, int64(99), view.StockOf("toalla", "old"), "el stock por bodega sí se consulta")
	assert.Equal(t, int64(10), view.TotalStockOf("toalla"), "el total excluye la bodega inactiva")
}

// TestService_PicklistEnOrdenDeCreacion.
func TestService_PicklistEnOrdenDeCreacion(t *testing.T) {
	store, view := newView(t)
	upsert(t, store, entity.PicklistManagers, "p1", &entity.PicklistEntry{ID: "p1", Value: "Nick"})
	upsert(t, store, entity.PicklistManagers, "p2", &entity.PicklistEntry{ID: "p2", Value: "Wendy"})

	assert.Equal(t, []string{"Nick", "Wendy"}, view.Picklist(entity.PicklistManagers))
}
