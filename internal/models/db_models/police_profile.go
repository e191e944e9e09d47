package db_models

import "github.com/google/uuid"

type PoliceProfile struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	StationName *string
	IsVerified  bool
}
