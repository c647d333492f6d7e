package repo

import (
	"context"
	"errors"
	"testing"

	"nova/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestDocumentRepositoryUnavailableStore(t *testing.T) {
	r := NewDocumentRepository(db.NewStore(nil), zap.NewNop())

	_, err := r.Create(context.Background(), db.CollectionUsers, bson.M{"username": "lee"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = r.List(context.Background(), db.CollectionUsers, nil, 100)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestDocumentRepositoryEmptyCollection(t *testing.T) {
	r := NewDocumentRepository(db.NewStore(nil), zap.NewNop())

	_, err := r.Create(context.Background(), "", bson.M{})
	assert.ErrorIs(t, err, ErrInvalidCollection)

	_, err = r.List(context.Background(), "", nil, 100)
	assert.ErrorIs(t, err, ErrInvalidCollection)
}

func TestWriteErrorUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := &WriteError{Collection: "user", Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "write to user failed: socket closed", err.Error())
}

func TestReadErrorUnwrap(t *testing.T) {
	cause := errors.New("cursor timeout")
	err := &ReadError{Collection: "video", Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "read from video failed: cursor timeout", err.Error())
}
