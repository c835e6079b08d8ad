package models

// Project is the top-level container for a renovation/furnishing engagement.
// The floor mapping is a room-type × floor matrix stored as a single jsonb
// document; edits replace the whole document on save.
type Project struct {
	BaseModel
	Name         string       `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	FloorMapping FloorMapping `json:"floor_mapping" gorm:"type:jsonb"`

	// FloorPlanURL holds the public URL of the uploaded room-mix image,
	// persisted at upload time rather than re-derived from a fixed filename.
	FloorPlanURL string `json:"floor_plan_url" gorm:"size:500"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
