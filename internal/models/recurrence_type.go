package models

// RecurrenceType is a read-only catalog of recurrence frequencies for fixed
// expenses (monthly, yearly, ...). Retired rows stay in the table with
// IsActive false and are never surfaced.
type RecurrenceType struct {
	Base
	Value       string `gorm:"not null" json:"value"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
}
