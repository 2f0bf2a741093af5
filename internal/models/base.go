package models

import (
	"time"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Identifiers are
// store-assigned integers and are never reused.
type Base struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// GetID returns the store-assigned identifier.
func (b *Base) GetID() uint { return b.ID }
