package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gastor/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestBankEntity creates a bank entity with a unique name.
func CreateTestBankEntity(t *testing.T, db *gorm.DB) *models.BankEntity {
	t.Helper()

	entity := &models.BankEntity{Name: fmt.Sprintf("Banco Test %d", nextID())}
	if err := db.Create(entity).Error; err != nil {
		t.Fatalf("failed to create test bank entity: %v", err)
	}
	return entity
}

// CreateTestPaymentType creates a payment type.
func CreateTestPaymentType(t *testing.T, db *gorm.DB) *models.PaymentType {
	t.Helper()

	pt := &models.PaymentType{Name: fmt.Sprintf("Tipo de Pago %d", nextID())}
	if err := db.Create(pt).Error; err != nil {
		t.Fatalf("failed to create test payment type: %v", err)
	}
	return pt
}

// CreateTestExpenseCategory creates an expense category.
func CreateTestExpenseCategory(t *testing.T, db *gorm.DB) *models.ExpenseCategory {
	t.Helper()

	category := &models.ExpenseCategory{Name: fmt.Sprintf("Categoría %d", nextID())}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test expense category: %v", err)
	}
	return category
}

// CreateTestExpenseSubcategory creates a subcategory under the given category.
func CreateTestExpenseSubcategory(t *testing.T, db *gorm.DB, categoryID uint) *models.ExpenseSubcategory {
	t.Helper()

	subcategory := &models.ExpenseSubcategory{
		Name:       fmt.Sprintf("Subcategoría %d", nextID()),
		CategoryID: categoryID,
	}
	if err := db.Create(subcategory).Error; err != nil {
		t.Fatalf("failed to create test expense subcategory: %v", err)
	}
	return subcategory
}

// CreateTestExpenseType creates an expense type with the given name and
// active flag.
func CreateTestExpenseType(t *testing.T, db *gorm.DB, name string, active bool) *models.ExpenseType {
	t.Helper()

	et := &models.ExpenseType{
		Name:     name,
		Code:     fmt.Sprintf("ET%d", nextID()),
		IsActive: active,
	}
	if err := db.Create(et).Error; err != nil {
		t.Fatalf("failed to create test expense type: %v", err)
	}
	return et
}

// CreateTestRecurrenceType creates a recurrence type with the given active flag.
func CreateTestRecurrenceType(t *testing.T, db *gorm.DB, active bool) *models.RecurrenceType {
	t.Helper()

	rt := &models.RecurrenceType{
		Value:    fmt.Sprintf("recurrencia-%d", nextID()),
		IsActive: active,
	}
	if err := db.Create(rt).Error; err != nil {
		t.Fatalf("failed to create test recurrence type: %v", err)
	}
	return rt
}

// CreateTestUnitMeasure creates a unit measure.
func CreateTestUnitMeasure(t *testing.T, db *gorm.DB) *models.UnitMeasure {
	t.Helper()

	unit := &models.UnitMeasure{
		Name:         fmt.Sprintf("Unidad %d", nextID()),
		Abbreviation: "u",
	}
	if err := db.Create(unit).Error; err != nil {
		t.Fatalf("failed to create test unit measure: %v", err)
	}
	return unit
}

// CreateTestPaymentPlan creates a plan owned by the given fixed expense,
// with fresh payment type and bank entity references.
func CreateTestPaymentPlan(t *testing.T, db *gorm.DB, fixedExpenseID uint) *models.PaymentPlan {
	t.Helper()

	pt := CreateTestPaymentType(t, db)
	be := CreateTestBankEntity(t, db)

	plan := &models.PaymentPlan{
		FixedExpenseID: &fixedExpenseID,
		PaymentTypeID:  pt.ID,
		BankEntityID:   be.ID,
		Installments:   6,
		StartDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create test payment plan: %v", err)
	}
	return plan
}

// CreateTestProspect creates a prospect with a unique mail.
func CreateTestProspect(t *testing.T, db *gorm.DB) *models.Prospect {
	t.Helper()

	n := nextID()
	prospect := &models.Prospect{
		Name: fmt.Sprintf("Prospecto %d", n),
		Mail: fmt.Sprintf("prospecto%d@test.com", n),
	}
	if err := db.Create(prospect).Error; err != nil {
		t.Fatalf("failed to create test prospect: %v", err)
	}
	return prospect
}
