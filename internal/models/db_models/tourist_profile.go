package db_models

import (
	"time"

	"github.com/google/uuid"
)

type TouristProfile struct {
	BaseModel
	AccountID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	FullName      string
	Age           int
	PhoneNumber   string
	AadhaarNumber string // IMPORTANT: encrypt in production
	PassportID    *string
	EntryDate     time.Time
	LeaveDate     time.Time
	PhotoURL      *string

	EmergencyContacts []EmergencyContact `gorm:"foreignKey:ProfileID"`
}
