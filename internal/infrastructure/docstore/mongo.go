package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/hotel-stock/pkg/config"
	"github.com/tu-usuario/hotel-stock/pkg/logger"
)

var _ Store = (*MongoStore)(nil)

// MongoStore almacén de documentos sobre MongoDB: una colección Mongo por
// colección lógica, documentos con _id = id del registro y suscripciones vía
// change streams.
//
// Atomicidad: Apply usa un BulkWrite ordenado por colección. En un servidor
// standalone (sin replica set) eso deja una ventana donde otro lector puede
// ver una sola pata de un transfer; es la inconsistencia documentada del
// backend, no un silencio. Con replica set los change streams además
// habilitan el refresco en vivo; sin él se degrada a sondeo periódico.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

// NewMongoStore conecta y verifica el servidor.
func NewMongoStore(ctx context.Context, cfg config.StoreConfig, log *logger.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("conectar a mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoStore{
		client: client,
		db:     client.Database(cfg.MongoDB),
		log:    log,
	}, nil
}

// GetAll devuelve todos los registros de la colección, por id.
func (s *MongoStore) GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("leer colección %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	records := make(map[string]json.RawMessage)
	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar documento: %w", err)
		}
		id, body := splitID(doc)
		if id == "" {
			continue
		}
		data, err := bson.MarshalExtJSON(body, false, false)
		if err != nil {
			return nil, fmt.Errorf("serializar documento %s: %w", id, err)
		}
		records[id] = json.RawMessage(data)
	}
	return records, cursor.Err()
}

// Apply agrupa las ops por colección y ejecuta un BulkWrite ordenado por grupo.
func (s *MongoStore) Apply(ctx context.Context, ops []Op) error {
	if len(ops) == 0 {
		return nil
	}
	grouped := make(map[string][]mongo.WriteModel)
	order := make([]string, 0)
	for _, op := range ops {
		var model mongo.WriteModel
		if op.Data != nil {
			var body bson.D
			if err := bson.UnmarshalExtJSON(op.Data, false, &body); err != nil {
				return fmt.Errorf("deserializar op %s/%s: %w", op.Collection, op.ID, err)
			}
			replacement := append(bson.D{{Key: "_id", Value: op.ID}}, body...)
			model = mongo.NewReplaceOneModel().
				SetFilter(bson.D{{Key: "_id", Value: op.ID}}).
				SetReplacement(replacement).
				SetUpsert(true)
		} else {
			model = mongo.NewDeleteOneModel().
				SetFilter(bson.D{{Key: "_id", Value: op.ID}})
		}
		if _, ok := grouped[op.Collection]; !ok {
			order = append(order, op.Collection)
		}
		grouped[op.Collection] = append(grouped[op.Collection], model)
	}

	for _, collection := range order {
		_, err := s.db.Collection(collection).
			BulkWrite(ctx, grouped[collection], options.BulkWrite().SetOrdered(true))
		if err != nil {
			return fmt.Errorf("bulk write %s: %w", collection, err)
		}
	}
	return nil
}

// Subscribe abre un change stream sobre la colección; si el servidor no los
// soporta (standalone), degrada a sondeo cada 5 segundos.
func (s *MongoStore) Subscribe(ctx context.Context, collection string, fn func()) (Unsubscribe, error) {
	subCtx, cancel := context.WithCancel(ctx)
	go s.watch(subCtx, collection, fn)
	return Unsubscribe(cancel), nil
}

func (s *MongoStore) watch(ctx context.Context, collection string, fn func()) {
	stream, err := s.db.Collection(collection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		s.log.Warn().Err(err).Str("collection", collection).
			Msg("change streams no disponibles, degradando a sondeo")
		s.poll(ctx, fn)
		return
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		fn()
	}
	if ctx.Err() == nil && stream.Err() != nil {
		s.log.Warn().Err(stream.Err()).Str("collection", collection).
			Msg("change stream cortado, degradando a sondeo")
		s.poll(ctx, fn)
	}
}

func (s *MongoStore) poll(ctx context.Context, fn func()) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// Close desconecta el cliente.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func splitID(doc bson.D) (string, bson.D) {
	var id string
	body := make(bson.D, 0, len(doc))
	for _, e := range doc {
		if e.Key == "_id" {
			if v, ok := e.Value.(string); ok {
				id = v
			}
			continue
		}
		body = append(body, e)
	}
	return id, body
}
