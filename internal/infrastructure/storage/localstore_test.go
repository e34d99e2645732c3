package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutGetDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	key, err := store.Put(ctx, "report.pdf", strings.NewReader("blob contents"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotContains(t, key, "..")

	rc, err := store.Get(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "blob contents", string(data))

	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Get(ctx, key)
	assert.Error(t, err)
}

func TestLocalStore_KeysAreUnique(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	first, err := store.Put(ctx, "log.txt", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Put(ctx, "log.txt", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStore_RejectsTraversalKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = store.Get(ctx, "../outside")
	assert.Error(t, err)

	err = store.Delete(ctx, "/etc/passwd")
	assert.Error(t, err)
}
