package db_models

import (
	"time"

	"github.com/google/uuid"
)

type SOSAudio struct {
	BaseModel
	EventID    uuid.UUID `gorm:"type:uuid;index"`
	ObjectURL  string
	UploadedAt time.Time
}
