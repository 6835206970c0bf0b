package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/hotel-stock/pkg/config"
	"github.com/tu-usuario/hotel-stock/pkg/logger"
)

// Canal de NOTIFY; el payload es el nombre de la colección que cambió.
const pgChannel = "docstore_changed"

var _ Store = (*PostgresStore)(nil)

// PostgresStore almacén de documentos sobre PostgreSQL: una tabla jsonb con
// clave (collection, id), lotes en una transacción (atómicos, incluida la
// pareja de un transfer) y suscripciones vía LISTEN/NOTIFY.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  *logger.Logger

	mu          sync.Mutex
	subscribers map[string][]*pgSubscriber
	listening   bool
	cancel      context.CancelFunc
}

type pgSubscriber struct {
	fn     func()
	closed bool
}

// NewPostgresStore abre el pool, asegura el esquema y deja el store listo.
func NewPostgresStore(ctx context.Context, cfg config.StoreConfig, log *logger.Logger) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}

	s := &PostgresStore{
		pool:        pool,
		log:         log,
		subscribers: make(map[string][]*pgSubscriber),
	}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			collection text NOT NULL,
			id         text NOT NULL,
			data       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("crear tabla documents: %w", err)
	}
	return nil
}

// GetAll devuelve todos los registros de la colección, por id.
func (s *PostgresStore) GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, data FROM documents WHERE collection = $1`, collection)
	if err != nil {
		return nil, fmt.Errorf("leer colección %s: %w", collection, err)
	}
	defer rows.Close()

	records := make(map[string]json.RawMessage)
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		records[id] = json.RawMessage(data)
	}
	return records, rows.Err()
}

// Apply aplica el lote en una sola transacción y notifica una vez por
// colección tocada. Commit o nada: la pareja de un transfer nunca queda a
// medias para otros lectores.
func (s *PostgresStore) Apply(ctx context.Context, ops []Op) error {
	if len(ops) == 0 {
		return nil
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	touched := make(map[string]struct{})
	for _, op := range ops {
		if op.Data != nil {
			_, err = tx.Exec(ctx, `
				INSERT INTO documents (collection, id, data, updated_at)
				VALUES ($1, $2, $3, now())
				ON CONFLICT (collection, id)
				DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
				op.Collection, op.ID, []byte(op.Data))
		} else {
			_, err = tx.Exec(ctx,
				`DELETE FROM documents WHERE collection = $1 AND id = $2`,
				op.Collection, op.ID)
		}
		if err != nil {
			return fmt.Errorf("aplicar op %s/%s: %w", op.Collection, op.ID, err)
		}
		touched[op.Collection] = struct{}{}
	}

	for collection := range touched {
		if _, err := tx.Exec(ctx, `SELECT pg_notify($1, $2)`, pgChannel, collection); err != nil {
			return fmt.Errorf("notify %s: %w", collection, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Subscribe registra el callback para una colección y arranca el listener
// compartido la primera vez.
func (s *PostgresStore) Subscribe(ctx context.Context, collection string, fn func()) (Unsubscribe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &pgSubscriber{fn: fn}
	s.subscribers[collection] = append(s.subscribers[collection], sub)

	if !s.listening {
		listenCtx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel
		s.listening = true
		go s.listen(listenCtx)
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.closed = true
	}, nil
}

// listen mantiene una conexión dedicada en LISTEN y despacha por payload.
// Si la conexión se cae, reintenta con espera fija.
func (s *PostgresStore) listen(ctx context.Context) {
	for {
		if err := s.listenOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.Warn().Err(err).Msg("listener de documentos caído, reintentando")
			select {
			case <-time.After(3 * time.Second):
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *PostgresStore) listenOnce(ctx context.Context) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire conexión listener: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `LISTEN `+pgChannel); err != nil {
		return fmt.Errorf("LISTEN: %w", err)
	}
	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		s.dispatch(notification.Payload)
	}
}

func (s *PostgresStore) dispatch(collection string) {
	s.mu.Lock()
	subs := make([]*pgSubscriber, 0, len(s.subscribers[collection]))
	for _, sub := range s.subscribers[collection] {
		if !sub.closed {
			subs = append(subs, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

// Close apaga el listener y cierra el pool.
func (s *PostgresStore) Close(_ context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.pool.Close()
	return nil
}
