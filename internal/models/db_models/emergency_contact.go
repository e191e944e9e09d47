package db_models

import "github.com/google/uuid"

type EmergencyContact struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Phone     string
}
