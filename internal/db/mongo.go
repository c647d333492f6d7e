package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per entity kind. Kept lowercase singular to match
// the documents already in the database.
const (
	CollectionUsers    = "user"
	CollectionChannels = "channel"
	CollectionMessages = "message"
	CollectionVideos   = "video"
)

var ErrStorageUnavailable = errors.New("storage unavailable: no database configured")

func OpenConnection(uri string, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	return client.Database(database), nil
}

// Store wraps the database handle with an explicit unavailable state so
// callers get a typed error instead of a nil dereference when the server
// was started without a reachable database.
type Store struct {
	db *mongo.Database
}

// NewStore accepts a nil database; every operation on an unavailable store
// fails with ErrStorageUnavailable.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

func (s *Store) DatabaseName() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

// InsertOne inserts a single document and returns the generated identifier
// as a hex string.
func (s *Store) InsertOne(ctx context.Context, collection string, document interface{}) (string, error) {
	if !s.Available() {
		return "", ErrStorageUnavailable
	}

	result, err := s.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	if str, ok := result.InsertedID.(string); ok {
		return str, nil
	}
	return "", errors.New("unexpected inserted id type")
}

// Find returns at most limit documents matching the filter, in whatever
// order the store yields them.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !s.Available() {
		return nil, ErrStorageUnavailable
	}

	findOptions := options.Find().SetLimit(limit)

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrStorageUnavailable
	}
	return s.db.Client().Ping(ctx, nil)
}

// CollectionNames lists the collections present in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrStorageUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *Store) Disconnect(ctx context.Context) error {
	if !s.Available() {
		return nil
	}
	return s.db.Client().Disconnect(ctx)
}
