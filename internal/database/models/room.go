package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// FurnitureItem is one identified furniture type within a room. Items carry a
// stable identifier assigned at creation time so edits address an item rather
// than an array position.
type FurnitureItem struct {
	ID    uuid.UUID `json:"id"`
	Type  string    `json:"type"`
	Count int       `json:"count"`
}

// FurnitureList is the jsonb-persisted furniture sequence of a room.
type FurnitureList []FurnitureItem

// Value implements driver.Valuer for jsonb storage.
func (l FurnitureList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(FurnitureList{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage.
func (l *FurnitureList) Scan(value interface{}) error {
	if value == nil {
		*l = FurnitureList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for FurnitureList: %T", value)
	}
}

// Room is a physical space within a project, with an uploaded floor-plan
// document and the furniture identified in it.
type Room struct {
	BaseModel
	ProjectID uint   `json:"project_id" gorm:"not null;index" validate:"required"`
	Name      string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	PdfURL    string `json:"pdf_url" gorm:"size:500"`

	// RoomType, when set, assigns this room to a floor-mapping room type
	// explicitly. Empty means the demand projector falls back to matching
	// by name containment.
	RoomType string `json:"room_type" gorm:"size:200"`

	Furniture FurnitureList `json:"furniture" gorm:"type:jsonb"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Room
func (Room) TableName() string {
	return "rooms"
}
