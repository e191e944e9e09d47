package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Yadavallitejas/tourist-guard/internal/infra"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
)

func newRepoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.AutoMigrate(db))
	return db
}

func TestDeleteOlderThan(t *testing.T) {
	db := newRepoTestDB(t)

	account := &db_models.Account{
		Username:     "amit",
		Email:        "amit@example.com",
		PasswordHash: "x",
		Role:         db_models.RoleTourist,
	}
	require.NoError(t, db.Create(account).Error)

	repo := NewLocationRepository(db)
	cutoff := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, offset := range []time.Duration{-2 * time.Hour, -time.Hour, time.Hour} {
		require.NoError(t, repo.Insert(context.Background(), &db_models.Location{
			TouristID: account.ID,
			Latitude:  25.5,
			Longitude: 91.8,
			Timestamp: cutoff.Add(offset),
		}))
	}

	deleted, err := repo.DeleteOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	var remaining int64
	require.NoError(t, db.Model(&db_models.Location{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	// idempotent on a second pass
	deleted, err = repo.DeleteOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
