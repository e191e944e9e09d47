package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
)

type SOSRepository interface {
	InsertEvent(ctx context.Context, event *db_models.SOSEvent) error
	InsertAudio(ctx context.Context, audio *db_models.SOSAudio) error
	FindEventByID(ctx context.Context, id uuid.UUID) (*db_models.SOSEvent, error)
	FindEventByIDWithDetails(ctx context.Context, id uuid.UUID) (*db_models.SOSEvent, error)
	ListActive(ctx context.Context, limit int) ([]db_models.SOSEvent, error)
}

type sosRepository struct {
	db *gorm.DB
}

func NewSOSRepository(db *gorm.DB) SOSRepository {
	return &sosRepository{db: db}
}

func (r *sosRepository) InsertEvent(ctx context.Context, event *db_models.SOSEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *sosRepository) InsertAudio(ctx context.Context, audio *db_models.SOSAudio) error {
	return r.db.WithContext(ctx).Create(audio).Error
}

func (r *sosRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*db_models.SOSEvent, error) {
	var event db_models.SOSEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *sosRepository) FindEventByIDWithDetails(ctx context.Context, id uuid.UUID) (*db_models.SOSEvent, error) {
	var event db_models.SOSEvent
	err := r.db.WithContext(ctx).
		Preload("Tourist.TouristProfile").
		Preload("Audio", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC")
		}).
		First(&event, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// ListActive returns open events newest first, capped at limit, with the
// tourist, profile and audio rows (oldest upload first) preloaded.
func (r *sosRepository) ListActive(ctx context.Context, limit int) ([]db_models.SOSEvent, error) {
	var events []db_models.SOSEvent
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Preload("Tourist.TouristProfile").
		Preload("Audio", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC")
		}).
		Find(&events).Error

	if err != nil {
		return nil, err
	}
	return events, nil
}
