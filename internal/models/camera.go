package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Camera struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string    `gorm:"not null;index" json:"name"`
	Location string    `gorm:"not null" json:"location"`
}

func (c *Camera) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
