// Package ledger mantiene la vista en vivo de los registros persistidos: se
// suscribe al almacén de documentos, recarga la colección que cambió y
// expone el stock derivado y la resolución de responsables sobre ese
// snapshot. Ningún agregado en caché es autoritativo: la verdad es siempre
// el fold del ledger vigente.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tu-usuario/hotel-stock/internal/domain"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/manager"
	"github.com/tu-usuario/hotel-stock/internal/domain/stock"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
	"github.com/tu-usuario/hotel-stock/pkg/logger"
)

const reloadTimeout = 10 * time.Second

// Service snapshot vivo de items, bodegas, movimientos y asignaciones.
type Service struct {
	store docstore.Store
	log   *logger.Logger

	mu          sync.RWMutex
	items       []*entity.Item
	itemsByID   map[string]*entity.Item
	warehouses  []*entity.Warehouse // orden de creación
	whByID      map[string]*entity.Warehouse
	movements   []*entity.Movement // orden CreatedAt, luego ID
	assignments []*entity.ManagerAssignment
	picklists   map[string][]*entity.PicklistEntry
	version     uint64

	cache         *stock.Cache
	unsubscribers []docstore.Unsubscribe
}

// NewService construye el servicio sin cargar nada todavía.
func NewService(store docstore.Store, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		log:       log,
		itemsByID: make(map[string]*entity.Item),
		whByID:    make(map[string]*entity.Warehouse),
		picklists: make(map[string][]*entity.PicklistEntry),
		cache:     stock.NewCache(),
	}
}

// Start hace la carga inicial de todas las colecciones y deja las
// suscripciones abiertas (una por colección, vivas hasta Stop).
func (s *Service) Start(ctx context.Context) error {
	for _, collection := range docstore.Collections {
		if err := s.reload(ctx, collection); err != nil {
			return err
		}
		coll := collection
		unsub, err := s.store.Subscribe(ctx, coll, func() { s.onChange(coll) })
		if err != nil {
			return fmt.Errorf("suscribir %s: %w", coll, err)
		}
		s.unsubscribers = append(s.unsubscribers, unsub)
	}
	return nil
}

// Stop cierra todas las suscripciones (evita fugas al terminar la sesión).
func (s *Service) Stop() {
	for _, unsub := range s.unsubscribers {
		unsub()
	}
	s.unsubscribers = nil
}

func (s *Service) onChange(collection string) {
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()
	if err := s.reload(ctx, collection); err != nil {
		s.log.Error().Err(err).Str("collection", collection).Msg("recargar colección")
	}
}

// reload relee la colección completa y reemplaza esa parte del snapshot.
// Cada recarga sube la versión, lo que invalida el memo de stock.
func (s *Service) reload(ctx context.Context, collection string) error {
	records, err := s.store.GetAll(ctx, collection)
	if err != nil {
		return fmt.Errorf("leer %s: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch collection {
	case docstore.CollItems:
		items, err := docstore.DecodeAll[entity.Item](records)
		if err != nil {
			return err
		}
		sort.Slice(items, func(i, j int) bool { return byCreation(items[i].CreatedAt, items[j].CreatedAt, items[i].ID, items[j].ID) })
		s.items = items
		s.itemsByID = make(map[string]*entity.Item, len(items))
		for _, it := range items {
			s.itemsByID[it.ID] = it
		}
	case docstore.CollWarehouses:
		whs, err := docstore.DecodeAll[entity.Warehouse](records)
		if err != nil {
			return err
		}
		sort.Slice(whs, func(i, j int) bool { return byCreation(whs[i].CreatedAt, whs[j].CreatedAt, whs[i].ID, whs[j].ID) })
		s.warehouses = whs
		s.whByID = make(map[string]*entity.Warehouse, len(whs))
		for _, w := range whs {
			s.whByID[w.ID] = w
		}
	case docstore.CollMovements:
		movs, err := docstore.DecodeAll[entity.Movement](records)
		if err != nil {
			return err
		}
		sort.Slice(movs, func(i, j int) bool { return byCreation(movs[i].CreatedAt, movs[j].CreatedAt, movs[i].ID, movs[j].ID) })
		s.movements = movs
	case docstore.CollAssignments:
		asgs, err := docstore.DecodeAll[entity.ManagerAssignment](records)
		if err != nil {
			return err
		}
		sort.Slice(asgs, func(i, j int) bool { return byCreation(asgs[i].CreatedAt, asgs[j].CreatedAt, asgs[i].ID, asgs[j].ID) })
		s.assignments = asgs
	default:
		entries, err := docstore.DecodeAll[entity.PicklistEntry](records)
		if err != nil {
			return err
		}
		sort.Slice(entries, func(i, j int) bool { return byCreation(entries[i].CreatedAt, entries[j].CreatedAt, entries[i].ID, entries[j].ID) })
		s.picklists[collection] = entries
	}

	s.version++
	return nil
}

func byCreation(ti, tj time.Time, idi, idj string) bool {
	if !ti.Equal(tj) {
		return ti.Before(tj)
	}
	return idi < idj
}

// Version contador del snapshot; sube con cada recarga.
func (s *Service) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Item devuelve el artículo o ErrNotFound.
func (s *Service) Item(id string) (*entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.itemsByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return it, nil
}

// Items todos los artículos en orden de creación.
func (s *Service) Items() []*entity.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.Item(nil), s.items...)
}

// Warehouse devuelve la bodega o ErrNotFound.
func (s *Service) Warehouse(id string) (*entity.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.whByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

// Warehouses todas las bodegas en orden de creación.
func (s *Service) Warehouses() []*entity.Warehouse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.Warehouse(nil), s.warehouses...)
}

// Movements el ledger completo, ordenado por creación.
func (s *Service) Movements() []*entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.Movement(nil), s.movements...)
}

// Assignments todas las reglas de asignación.
func (s *Service) Assignments() []*entity.ManagerAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.ManagerAssignment(nil), s.assignments...)
}

// Picklist valores de una lista de sugerencias, en orden de creación.
func (s *Service) Picklist(list string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make([]string, 0, len(s.picklists[list]))
	for _, e := range s.picklists[list] {
		values = append(values, e.Value)
	}
	return values
}

// StockOf stock derivado de un artículo en una bodega (memoizado por versión).
func (s *Service) StockOf(itemID, warehouseID string) int64 {
	s.mu.RLock()
	movements := s.movements
	version := s.version
	s.mu.RUnlock()
	return s.cache.Of(movements, version, itemID, warehouseID)
}

// TotalStockOf stock total del artículo sumando solo bodegas activas.
func (s *Service) TotalStockOf(itemID string) int64 {
	s.mu.RLock()
	movements := s.movements
	whByID := s.whByID
	s.mu.RUnlock()
	return stock.TotalOf(movements, itemID, func(warehouseID string) bool {
		w, ok := whByID[warehouseID]
		return ok && w.IsActive
	})
}

// StockFunc forma funcional de StockOf para los motores puros.
func (s *Service) StockFunc() manager.StockFunc {
	return s.StockOf
}

// ManagerOf responsable del artículo (vista de un solo valor; ver AllManagersOf).
func (s *Service) ManagerOf(itemID string) (string, error) {
	it, err := s.Item(itemID)
	if err != nil {
		return "", err
	}
	return manager.Of(it, s.Warehouses(), s.Assignments(), s.StockFunc()), nil
}

// AllManagersOf desglose de responsables por bodega con stock del artículo.
func (s *Service) AllManagersOf(itemID string) ([]manager.Breakdown, error) {
	it, err := s.Item(itemID)
	if err != nil {
		return nil, err
	}
	return manager.AllOf(it, s.Warehouses(), s.Assignments(), s.StockFunc()), nil
}
