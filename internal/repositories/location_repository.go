package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
)

type LocationRepository interface {
	Insert(ctx context.Context, location *db_models.Location) error
	LatestByTourist(ctx context.Context, touristID uuid.UUID) (*db_models.Location, error)
	ListByTouristWindow(ctx context.Context, touristID uuid.UUID, from, to time.Time, limit int) ([]db_models.Location, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Insert(ctx context.Context, location *db_models.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) LatestByTourist(ctx context.Context, touristID uuid.UUID) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).
		Where("tourist_id = ?", touristID).
		Order("timestamp DESC").
		First(&location).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

// ListByTouristWindow returns the rows timestamped in [from, to],
// chronological, capped at limit.
func (r *locationRepository) ListByTouristWindow(ctx context.Context, touristID uuid.UUID, from, to time.Time, limit int) ([]db_models.Location, error) {
	var locations []db_models.Location
	err := r.db.WithContext(ctx).
		Where("tourist_id = ? AND timestamp >= ? AND timestamp <= ?", touristID, from, to).
		Order("timestamp ASC").
		Limit(limit).
		Find(&locations).Error

	if err != nil {
		return nil, err
	}
	return locations, nil
}

// DeleteOlderThan is the retention hook; nothing schedules it today.
func (r *locationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("timestamp < ?", cutoff).
		Delete(&db_models.Location{})
	return result.RowsAffected, result.Error
}
