package docstore

import (
	"context"
	"encoding/json"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore almacén en memoria: tests y modo demo. Las notificaciones de
// suscripción se entregan de forma síncrona tras Apply, lo que hace los
// tests deterministas.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
	subscribers map[string][]*memSubscriber
}

type memSubscriber struct {
	fn     func()
	closed bool
}

// NewMemoryStore construye el almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]json.RawMessage),
		subscribers: make(map[string][]*memSubscriber),
	}
}

// GetAll copia todos los registros de la colección.
func (s *MemoryStore) GetAll(_ context.Context, collection string) (map[string]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make(map[string]json.RawMessage, len(s.collections[collection]))
	for id, data := range s.collections[collection] {
		records[id] = data
	}
	return records, nil
}

// Apply aplica el lote bajo el lock (atómico por construcción) y notifica.
func (s *MemoryStore) Apply(_ context.Context, ops []Op) error {
	s.mu.Lock()
	touched := make(map[string]struct{})
	for _, op := range ops {
		coll := s.collections[op.Collection]
		if coll == nil {
			coll = make(map[string]json.RawMessage)
			s.collections[op.Collection] = coll
		}
		if op.Data != nil {
			coll[op.ID] = op.Data
		} else {
			delete(coll, op.ID)
		}
		touched[op.Collection] = struct{}{}
	}
	var notify []func()
	for collection := range touched {
		for _, sub := range s.subscribers[collection] {
			if !sub.closed {
				notify = append(notify, sub.fn)
			}
		}
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
	return nil
}

// Subscribe registra el callback para la colección.
func (s *MemoryStore) Subscribe(_ context.Context, collection string, fn func()) (Unsubscribe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := &memSubscriber{fn: fn}
	s.subscribers[collection] = append(s.subscribers[collection], sub)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.closed = true
	}, nil
}

// Close no hace nada en memoria.
func (s *MemoryStore) Close(_ context.Context) error { return nil }
