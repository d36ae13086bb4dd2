// internal/repository/store.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"teacher_training_api/internal/model"
)

// Store is the data access layer over the document store. Every endpoint
// goes through these generic single-collection operations; no operation
// retries, and upserts are the only idempotent writes.
type Store interface {
	// InsertOne inserts one document and returns the store-assigned
	// identifier as a hex string.
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)
	// FindMany returns documents matching an exact-match filter in the
	// store's natural order, capped at limit (unlimited when limit <= 0).
	FindMany(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	// FindOne returns the single document matching filter, or ErrNotFound.
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	// UpsertOne atomically inserts or overwrites the document matching
	// filter. Last write wins.
	UpsertOne(ctx context.Context, collection string, filter bson.M, doc interface{}) error
	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	// CollectionNames lists the collections present in the database.
	CollectionNames(ctx context.Context) ([]string, error)
	// Ping checks connectivity to the store.
	Ping(ctx context.Context) error
}

type mongoStore struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewMongoStore wraps a database handle in the Store interface. A nil db is
// tolerated so the process can come up without a reachable store: every
// operation then fails with a storage error while /test keeps reporting.
func NewMongoStore(db *mongo.Database, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &mongoStore{db: db, logger: logger}
}

var errNotInitialized = errors.New("database not initialized")

// storageError wraps a driver failure so it maps to a 500 with a bounded
// diagnostic message.
func storageError(op string, err error) *model.AppError {
	return model.NewAppError(
		"STORAGE_ERROR",
		model.Truncate(fmt.Sprintf("%s: %v", op, err), 200),
		"",
		model.ErrStorage,
	)
}

func (s *mongoStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", storageError("insert", errNotInitialized)
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		s.logger.Error("InsertOne failed", slog.String("collection", collection), slog.Any("error", err))
		return "", storageError("insert", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *mongoStore) FindMany(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, storageError("find", errNotInitialized)
	}
	if filter == nil {
		filter = bson.M{}
	}
	findOpts := options.Find()
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		s.logger.Error("Find failed", slog.String("collection", collection), slog.Any("error", err))
		return nil, storageError("find", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		s.logger.Error("Cursor decode failed", slog.String("collection", collection), slog.Any("error", err))
		return nil, storageError("decode", err)
	}
	return docs, nil
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	if s.db == nil {
		return nil, storageError("find one", errNotInitialized)
	}
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		s.logger.Error("FindOne failed", slog.String("collection", collection), slog.Any("error", err))
		return nil, storageError("find one", err)
	}
	return doc, nil
}

func (s *mongoStore) UpsertOne(ctx context.Context, collection string, filter bson.M, doc interface{}) error {
	if s.db == nil {
		return storageError("upsert", errNotInitialized)
	}
	update := bson.M{"$set": doc}
	_, err := s.db.Collection(collection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		s.logger.Error("Upsert failed", slog.String("collection", collection), slog.Any("error", err))
		return storageError("upsert", err)
	}
	return nil
}

func (s *mongoStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, storageError("count", errNotInitialized)
	}
	if filter == nil {
		filter = bson.M{}
	}
	count, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		s.logger.Error("Count failed", slog.String("collection", collection), slog.Any("error", err))
		return 0, storageError("count", err)
	}
	return count, nil
}

func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storageError("list collections", errNotInitialized)
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, storageError("list collections", err)
	}
	return names, nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return storageError("ping", errNotInitialized)
	}
	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return storageError("ping", err)
	}
	return nil
}
