// Package services contains the application services between the HTTP
// handlers and the store. Every operation is a single round trip; there are
// no retries and no state shared across requests.
package services

import (
	"time"

	"gastor/internal/models"
	"gastor/internal/pagination"
)

// CatalogServicer is the typed contract shared by every catalog kind:
// list the visible rows, fetch one by id, append one.
type CatalogServicer[T any] interface {
	List() ([]T, error)
	GetByID(id uint) (*T, error)
	Create(row *T) error
}

// ExpenseSubcategoryServicer defines subcategory access. Listing accepts an
// optional owning-category filter; an unknown category id yields an empty
// list, not an error.
type ExpenseSubcategoryServicer interface {
	List(categoryID *uint) ([]models.ExpenseSubcategory, error)
	GetByID(id uint) (*models.ExpenseSubcategory, error)
	Create(name string, categoryID uint) (*models.ExpenseSubcategory, error)
}

// PaymentPlanInput carries the fields needed to create a payment plan.
type PaymentPlanInput struct {
	ExpenseID        *uint
	FixedExpenseID   *uint
	PaymentTypeID    uint
	BankEntityID     uint
	InflationIndexed bool
	Installments     int
	StartDate        time.Time
}

// PaymentPlanServicer defines the contract for payment plan business logic.
type PaymentPlanServicer interface {
	Create(input PaymentPlanInput) (*models.PaymentPlan, error)
	GetByID(id uint) (*models.PaymentPlan, error)
	ListByFixedExpense(fixedExpenseID uint) ([]models.PaymentPlan, error)
	Delete(id uint) error
}

// UnitMeasureServicer defines the full-lifecycle contract for unit measures.
type UnitMeasureServicer interface {
	Create(name, abbreviation, description string) (*models.UnitMeasure, error)
	List() ([]models.UnitMeasure, error)
	GetByID(id uint) (*models.UnitMeasure, error)
	Update(id uint, name, abbreviation, description *string) (*models.UnitMeasure, error)
	Delete(id uint) error
}

// ProspectServicer defines lead intake. GetByID returns (nil, nil) when the
// prospect does not exist; the handler performs the 404 mapping for this
// resource.
type ProspectServicer interface {
	Create(name, mail string) (*models.Prospect, error)
	List(page pagination.PageRequest) (*pagination.PageResponse[models.Prospect], error)
	GetByID(id uint) (*models.Prospect, error)
}

// AuditServicer defines best-effort audit logging of mutating operations.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
