package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"gorm.io/gorm"
)

// Location is append-only; "most recent" reads sort by Timestamp, never by
// insertion order.
type Location struct {
	BaseModel
	TouristID uuid.UUID `gorm:"type:uuid;index"`
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	Timestamp time.Time `gorm:"index"`
	Geohash   string    `gorm:"index"`
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if err := l.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if l.Geohash == "" {
		l.Geohash = geohash.Encode(l.Latitude, l.Longitude)
	}
	return nil
}
