package appclient_test

import (
	"context"
	"testing"

	appclient "github.com/employedbar/go-appclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	store := appclient.NewMemoryTokenStore()

	val, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, store.Set(ctx, "first"))
	val, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", val)

	// set overwrites unconditionally, one active session per client
	require.NoError(t, store.Set(ctx, "second"))
	val, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", val)

	require.NoError(t, store.Clear(ctx))
	val, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, val)

	// clearing an empty store is a no-op, not an error
	require.NoError(t, store.Clear(ctx))
}

func TestBunTokenStore(t *testing.T) {
	ctx := context.Background()

	db, err := appclient.OpenSQLite("file::memory:?cache=shared")
	require.NoError(t, err)
	defer db.Close()

	store := appclient.NewBunTokenStore(db, testConfig())
	require.NoError(t, store.Init(ctx))

	val, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, store.Set(ctx, "persisted-token"))
	val, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", val)

	require.NoError(t, store.Set(ctx, "replacement"))
	val, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "replacement", val)

	// a second store over the same database observes the token, the
	// reload-survival contract
	again := appclient.NewBunTokenStore(db, testConfig())
	val, err = again.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "replacement", val)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	val, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, val)
}
