package models

// Prospect is an inbound sales lead captured before becoming a customer.
// Append-only; duplicate mails are allowed.
type Prospect struct {
	Base
	Name string `gorm:"not null" json:"name"`
	Mail string `gorm:"not null" json:"mail"`
}
