package models

// UnitMeasure is the only catalog with a full lifecycle: create, read,
// update and delete are all exposed.
type UnitMeasure struct {
	Base
	Name         string `gorm:"not null" json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Description  string `json:"description,omitempty"`
}
