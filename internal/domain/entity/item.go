package entity

import "time"

// Item representa un artículo rastreable del inventario de housekeeping.
// En el modelo multi-bodega el artículo NO guarda cantidad: el stock se
// deriva siempre del ledger de movimientos.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`  // una del conjunto Categories
	Unit      string    `json:"unit"`      // solo presentación: 個, 盒, 包...
	Frequency string    `json:"frequency"` // monthly, quarterly, semiannual, annual
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
