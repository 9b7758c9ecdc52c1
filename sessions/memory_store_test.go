// sessions/memory_store_test.go
package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.ID)
	assert.Empty(t, session.UserID)
	assert.WithinDuration(t, session.CreatedAt.Add(Lifetime), session.ExpiresAt, time.Second)

	loaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session.ID, loaded.ID)

	session.UserID = "u1"
	session.ReturnTo = "/upload"
	require.NoError(t, store.Save(ctx, session))
	loaded, err = store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", loaded.UserID)
	assert.Equal(t, "/upload", loaded.ReturnTo)

	require.NoError(t, store.Delete(ctx, session.ID))
	loaded, err = store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore()

	session, err := store.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session, err := store.Create(ctx)
	require.NoError(t, err)

	session.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
