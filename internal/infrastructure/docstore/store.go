// Package docstore define el puerto del almacén de documentos: colecciones
// direccionables por id, con suscripción en vivo. El núcleo no asume nada
// más del backend (PostgreSQL jsonb, MongoDB o memoria).
package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
)

// Colecciones persistidas.
const (
	CollItems       = "items"
	CollWarehouses  = "warehouses"
	CollMovements   = "stockMovements"
	CollAssignments = "managerAssignments"

	// Listas de sugerencias sin esquema (crecen por append-si-falta).
	CollManagerList  = entity.PicklistManagers
	CollOperatorList = entity.PicklistOperators
	CollUnitList     = entity.PicklistUnits
)

// Collections todas las colecciones conocidas, para limpieza y precarga.
var Collections = []string{
	CollItems, CollWarehouses, CollMovements, CollAssignments,
	CollManagerList, CollOperatorList, CollUnitList,
}

// Op una operación sobre un registro: upsert si Data != nil, delete si nil.
// Los escritos son siempre por registro (upsert con clave), nunca reemplazo
// de la colección completa: appends concurrentes no se pisan entre clientes.
type Op struct {
	Collection string
	ID         string
	Data       json.RawMessage // nil => delete
}

// Unsubscribe cierra una suscripción.
type Unsubscribe func()

// Store puerto del almacén de documentos.
//
// Apply aplica el lote completo; el driver lo hace atómico si el backend lo
// permite (PostgreSQL: una transacción). Donde no (MongoDB standalone) la
// ventana de lote parcial queda documentada en el driver.
//
// Subscribe registra un callback que se dispara cuando la colección cambia;
// el consumidor relee con GetAll (modelo push de refresco completo). La
// suscripción vive hasta Unsubscribe o hasta cancelar ctx.
type Store interface {
	GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error)
	Apply(ctx context.Context, ops []Op) error
	Subscribe(ctx context.Context, collection string, fn func()) (Unsubscribe, error)
	Close(ctx context.Context) error
}

// Upsert construye la Op de upsert serializando v a JSON.
func Upsert(collection, id string, v any) (Op, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Op{}, fmt.Errorf("serializar documento %s/%s: %w", collection, id, err)
	}
	return Op{Collection: collection, ID: id, Data: data}, nil
}

// Delete construye la Op de borrado.
func Delete(collection, id string) Op {
	return Op{Collection: collection, ID: id}
}

// DecodeAll decodifica todos los registros de una colección en el tipo T.
func DecodeAll[T any](records map[string]json.RawMessage) ([]*T, error) {
	out := make([]*T, 0, len(records))
	for id, raw := range records {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decodificar documento %s: %w", id, err)
		}
		out = append(out, &v)
	}
	return out, nil
}
