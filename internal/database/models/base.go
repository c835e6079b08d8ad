package models

import (
	"time"
)

// BaseModel provides the common fields for all persisted records. Integer
// primary keys are kept for compatibility with the managed store this data
// was migrated from.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
