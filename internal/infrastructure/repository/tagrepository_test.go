package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepository_FindOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db, testLogger())
	ctx := context.Background()

	t.Run("normalizes and dedupes", func(t *testing.T) {
		tags, err := repo.FindOrCreate(ctx, []string{" VPN ", "Login", "vpn", ""})
		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "vpn", tags[0].Name())
		assert.Equal(t, "login", tags[1].Name())
	})

	t.Run("reuses existing rows", func(t *testing.T) {
		first, err := repo.FindOrCreate(ctx, []string{"printer"})
		require.NoError(t, err)
		second, err := repo.FindOrCreate(ctx, []string{"PRINTER"})
		require.NoError(t, err)
		assert.Equal(t, first[0].ID(), second[0].ID())
	})
}

func TestTagRepository_FindByNames(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db, testLogger())
	ctx := context.Background()

	_, err := repo.FindOrCreate(ctx, []string{"vpn", "printer"})
	require.NoError(t, err)

	tags, err := repo.FindByNames(ctx, []string{"vpn", "missing"})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "vpn", tags[0].Name())
}

func TestTagRepository_ListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db, testLogger())
	ctx := context.Background()

	_, err := repo.FindOrCreate(ctx, []string{"vpn", "printer", "login"})
	require.NoError(t, err)

	tags, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "login", tags[0].Name())
}
