package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
)

type ZoneRepository interface {
	Insert(ctx context.Context, zone *db_models.DangerZone) (uuid.UUID, error)
	Update(ctx context.Context, zone *db_models.DangerZone) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.DangerZone, error)
	ListAll(ctx context.Context) ([]db_models.DangerZone, error)
}

type zoneRepository struct {
	db *gorm.DB
}

func NewZoneRepository(db *gorm.DB) ZoneRepository {
	return &zoneRepository{db: db}
}

func (r *zoneRepository) Insert(ctx context.Context, zone *db_models.DangerZone) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(zone).Error; err != nil {
		return uuid.Nil, err
	}
	return zone.ID, nil
}

func (r *zoneRepository) Update(ctx context.Context, zone *db_models.DangerZone) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(zone)
		if result.Error != nil {
			return fmt.Errorf("failed to update danger zone: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *zoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.DangerZone{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *zoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.DangerZone, error) {
	var zone db_models.DangerZone
	err := r.db.WithContext(ctx).First(&zone, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &zone, nil
}

// ListAll fixes the iteration order the geofence evaluator depends on:
// oldest zone first, id as tie-break.
func (r *zoneRepository) ListAll(ctx context.Context) ([]db_models.DangerZone, error) {
	var zones []db_models.DangerZone
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&zones).Error

	if err != nil {
		return nil, err
	}
	return zones, nil
}
