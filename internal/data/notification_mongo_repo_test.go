package data

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localjobs/localjobs-web/internal/testutil"
)

func TestMongoNotificationRepo_Contract(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	coll := testutil.SetupTestMongo(t)

	repo := NewMongoNotificationRepo(coll)
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	runNotificationRepoContract(t, repo)
}

func TestClassifyMongoErr(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, classifyMongoErr("find", mongo.ErrNoDocuments), ErrNotificationNotFound)
	assert.ErrorIs(t, classifyMongoErr("find", mongo.ErrClientDisconnected), ErrStoreUnavailable)

	deadline := classifyMongoErr("find", fmt.Errorf("server selection: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, deadline, context.DeadlineExceeded)
	assert.NotErrorIs(t, deadline, ErrStoreUnavailable)

	other := errors.New("decode failure")
	got := classifyMongoErr("find", other)
	assert.ErrorIs(t, got, other)
	assert.NotErrorIs(t, got, ErrStoreUnavailable)
}
