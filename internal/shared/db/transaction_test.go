package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noteRow struct {
	ID   uint   `gorm:"primaryKey"`
	Body string `gorm:"size:100"`
}

func (noteRow) TableName() string { return "notes" }

func setupTxTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&noteRow{}))
	return conn
}

func TestTransactionManager_RunInTransaction(t *testing.T) {
	conn := setupTxTestDB(t)
	tm := NewTransactionManager(conn)
	ctx := context.Background()

	t.Run("CommitsOnSuccess", func(t *testing.T) {
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			tx := GetTxFromContext(txCtx, conn)
			return tx.Create(&noteRow{Body: "kept"}).Error
		})
		require.NoError(t, err)

		var count int64
		require.NoError(t, conn.Model(&noteRow{}).Where("body = ?", "kept").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("RollsBackOnError", func(t *testing.T) {
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			tx := GetTxFromContext(txCtx, conn)
			if err := tx.Create(&noteRow{Body: "discarded"}).Error; err != nil {
				return err
			}
			return assert.AnError
		})
		require.Error(t, err)

		var count int64
		require.NoError(t, conn.Model(&noteRow{}).Where("body = ?", "discarded").Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("ContextCarriesTransaction", func(t *testing.T) {
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			// Inside the callback every repository call resolves to the
			// same transaction, not the root connection.
			tx := GetTxFromContext(txCtx, conn)
			assert.NotSame(t, conn, tx)
			assert.Same(t, tx, GetTxFromContext(txCtx, conn))
			return nil
		})
		require.NoError(t, err)
	})
}
