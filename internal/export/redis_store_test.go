package export

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/workforce-api/internal/model"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, 30*time.Second, zerolog.Nop()), mr
}

func TestRedisLockIsExclusive(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	release, err := store.Acquire(ctx, "export:csv:job:lock")
	require.NoError(t, err)
	assert.True(t, mr.Exists("export:csv:job:lock"))

	_, err = store.Acquire(ctx, "export:csv:job:lock")
	assert.ErrorIs(t, err, ErrInProgress)

	release()
	assert.False(t, mr.Exists("export:csv:job:lock"))

	release, err = store.Acquire(ctx, "export:csv:job:lock")
	require.NoError(t, err)
	release()
}

func TestRedisLockExpires(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	stale, err := store.Acquire(ctx, "export:avro:department:lock")
	require.NoError(t, err)

	mr.FastForward(31 * time.Second)

	release, err := store.Acquire(ctx, "export:avro:department:lock")
	require.NoError(t, err)

	// Releasing the expired holder must not drop the new holder's lock.
	stale()
	assert.True(t, mr.Exists("export:avro:department:lock"))
	release()
}

func TestRedisStatusRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	missing, err := store.LastResult(ctx, model.ExportFormatCSV)
	require.NoError(t, err)
	assert.Nil(t, missing)

	saved := &model.ExportResult{
		Message:    "CSV from db file created successfully",
		Format:     model.ExportFormatCSV,
		Table:      "department",
		Path:       "/tmp/department_table_data_db.csv",
		Rows:       4,
		StartedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2024, 5, 1, 12, 0, 1, 0, time.UTC),
	}
	require.NoError(t, store.SaveResult(ctx, saved))

	got, err := store.LastResult(ctx, model.ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}
