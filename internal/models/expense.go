package models

// ExpenseCategory groups expenses at the top level.
type ExpenseCategory struct {
	Base
	Name string `gorm:"not null" json:"name"`

	Subcategories []ExpenseSubcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`
}

// ExpenseSubcategory refines an ExpenseCategory. Listing can be filtered by
// the owning category.
type ExpenseSubcategory struct {
	Base
	Name       string `gorm:"not null" json:"name"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
}

// ExpenseType is a read-only projection maintained outside this surface.
// Only rows with IsActive true are ever exposed, sorted by name.
type ExpenseType struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Code        string `gorm:"not null" json:"code"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
}
