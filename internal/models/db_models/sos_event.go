package db_models

import "github.com/google/uuid"

// SOSEvent's Lat/Lon are the summary position captured from the last
// location point submitted with the event; nil when none was supplied.
type SOSEvent struct {
	BaseModel
	TouristID   uuid.UUID `gorm:"type:uuid;index"`
	IsActive    bool      `gorm:"index"`
	Description string
	Lat         *float64
	Lon         *float64

	Tourist Account    `gorm:"foreignKey:TouristID"`
	Audio   []SOSAudio `gorm:"foreignKey:EventID"`
}
