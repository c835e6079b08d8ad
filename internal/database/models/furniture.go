package models

// FurnitureRecord is a standalone furniture catalog entry, independent of any
// room.
type FurnitureRecord struct {
	BaseModel
	Name        string  `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Type        string  `json:"type" gorm:"not null;size:100" validate:"required,max=100"`
	Description string  `json:"description" gorm:"type:text"`
	Quantity    int     `json:"quantity" gorm:"not null;default:0" validate:"min=0"`
	Price       float64 `json:"price"`
	Location    string  `json:"location" gorm:"size:200"`
}

// TableName returns the table name for FurnitureRecord
func (FurnitureRecord) TableName() string {
	return "furniture"
}
