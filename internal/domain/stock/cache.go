package stock

import (
	"sync"

	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
)

type cacheKey struct {
	itemID      string
	warehouseID string
}

// Cache memoiza Of por (itemID, warehouseID) atado a una versión del ledger.
// Cuando la versión cambia (el ledger cambió) el memo se descarta completo,
// evitando re-escanear movimientos en cada lectura sin confiar en ningún
// agregado persistido como autoritativo.
type Cache struct {
	mu      sync.Mutex
	version uint64
	sums    map[cacheKey]int64
}

// NewCache construye el memo vacío.
func NewCache() *Cache {
	return &Cache{sums: make(map[cacheKey]int64)}
}

// Of devuelve el stock memoizado para la versión dada, recalculando con el
// fold puro en el primer acceso tras un cambio de versión.
func (c *Cache) Of(movements []*entity.Movement, version uint64, itemID, warehouseID string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version != version {
		c.version = version
		c.sums = make(map[cacheKey]int64)
	}
	key := cacheKey{itemID: itemID, warehouseID: warehouseID}
	if sum, ok := c.sums[key]; ok {
		return sum
	}
	sum := Of(movements, itemID, warehouseID)
	c.sums[key] = sum
	return sum
}
