package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nova/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var (
	ErrStorageUnavailable = db.ErrStorageUnavailable
	ErrInvalidCollection  = errors.New("invalid collection: name cannot be empty")
)

// WriteError wraps an insert failure from the backing store.
type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to %s failed: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError wraps a query failure from the backing store.
type ReadError struct {
	Collection string
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read from %s failed: %v", e.Collection, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

const (
	defaultWriteTimeout = 5 * time.Second
	defaultReadTimeout  = 30 * time.Second
)

// DocumentRepository is the single access path between handlers and the
// document store. Records reaching Create are assumed fully validated.
type DocumentRepository interface {
	// Create inserts one document into the named collection and returns the
	// generated identifier.
	Create(ctx context.Context, collection string, record interface{}) (string, error)
	// List returns at most limit documents matching the filter, each with its
	// internal identifier projected to a public "id" field. An empty result
	// is not an error.
	List(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
}

type documentRepository struct {
	store  *db.Store
	logger *zap.Logger
}

func NewDocumentRepository(store *db.Store, logger *zap.Logger) DocumentRepository {
	return &documentRepository{
		store:  store,
		logger: logger,
	}
}

func (r *documentRepository) Create(ctx context.Context, collection string, record interface{}) (string, error) {
	if collection == "" {
		return "", ErrInvalidCollection
	}

	ctx, cancel := r.ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	insertedID, err := r.store.InsertOne(ctx, collection, record)
	if err != nil {
		if errors.Is(err, db.ErrStorageUnavailable) {
			return "", err
		}
		r.logger.Error("insert failed",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return "", &WriteError{Collection: collection, Err: err}
	}

	r.logger.Info("document inserted",
		zap.String("collection", collection),
		zap.String("inserted_id", insertedID),
	)
	return insertedID, nil
}

func (r *documentRepository) List(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if collection == "" {
		return nil, ErrInvalidCollection
	}
	if filter == nil {
		filter = bson.M{}
	}

	ctx, cancel := r.ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	docs, err := r.store.Find(ctx, collection, filter, limit)
	if err != nil {
		if errors.Is(err, db.ErrStorageUnavailable) {
			return nil, err
		}
		r.logger.Error("find failed",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return nil, &ReadError{Collection: collection, Err: err}
	}

	shaped := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		shaped = append(shaped, db.RenameID(doc))
	}

	r.logger.Debug("documents listed",
		zap.String("collection", collection),
		zap.Int("count", len(shaped)),
	)
	return shaped, nil
}

func (r *documentRepository) ensureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hadDeadline := ctx.Deadline(); hadDeadline {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
