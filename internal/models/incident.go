package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Incident is a detected security event attributed to one camera. Only Resolved
// changes after creation.
type Incident struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	CameraID     uuid.UUID `gorm:"type:varchar(36);not null;index" json:"cameraId"`
	Type         string    `gorm:"not null" json:"type"`
	TsStart      time.Time `gorm:"not null;index" json:"tsStart"`
	TsEnd        time.Time `gorm:"not null" json:"tsEnd"`
	ThumbnailURL string    `gorm:"not null" json:"thumbnailUrl"`
	Resolved     bool      `gorm:"not null;default:false;index" json:"resolved"`

	// Relationships
	Camera Camera `gorm:"foreignKey:CameraID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"camera"`
}

// BeforeCreate assigns an id when missing and stores timestamps in UTC so that
// ordering by ts_start behaves the same on every driver.
func (i *Incident) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.TsStart = i.TsStart.UTC()
	i.TsEnd = i.TsEnd.UTC()
	return nil
}
