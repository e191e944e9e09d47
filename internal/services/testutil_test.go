package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Yadavallitejas/tourist-guard/internal/infra"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, so the in-memory database is shared
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.AutoMigrate(db))
	return db
}

func createTourist(t *testing.T, db *gorm.DB, username string) *db_models.Account {
	account := &db_models.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         db_models.RoleTourist,
		TouristProfile: &db_models.TouristProfile{
			FullName:      "Tourist " + username,
			Age:           30,
			PhoneNumber:   "9999999999",
			AadhaarNumber: "1234-5678-9012",
			EntryDate:     time.Now().AddDate(0, 0, -1),
			LeaveDate:     time.Now().AddDate(0, 0, 7),
		},
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func createPolice(t *testing.T, db *gorm.DB, username, station string) *db_models.Account {
	profile := &db_models.PoliceProfile{IsVerified: true}
	if station != "" {
		profile.StationName = &station
	}
	account := &db_models.Account{
		Username:      username,
		Email:         username + "@example.com",
		PasswordHash:  "x",
		Role:          db_models.RolePolice,
		PoliceProfile: profile,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

// setZoneCreatedAt pins the listing order the geofence evaluator follows.
func setZoneCreatedAt(t *testing.T, db *gorm.DB, id uuid.UUID, createdAt int64) {
	require.NoError(t, db.Model(&db_models.DangerZone{}).
		Where("id = ?", id).
		UpdateColumn("created_at", createdAt).Error)
}
