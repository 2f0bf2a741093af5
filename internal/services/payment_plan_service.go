package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "gastor/internal/errors"
	"gastor/internal/models"
)

// paymentPlanService handles payment plan business logic.
type paymentPlanService struct {
	db *gorm.DB
}

// NewPaymentPlanService creates a new PaymentPlanServicer.
func NewPaymentPlanService(db *gorm.DB) PaymentPlanServicer {
	return &paymentPlanService{db: db}
}

// Create validates and persists a payment plan. A plan must reference
// exactly one owner: either an expense or a fixed-expense template.
func (s *paymentPlanService) Create(input PaymentPlanInput) (*models.PaymentPlan, error) {
	if input.ExpenseID == nil && input.FixedExpenseID == nil {
		return nil, apperrors.ErrPlanOwnerRequired
	}
	if input.ExpenseID != nil && input.FixedExpenseID != nil {
		return nil, apperrors.ErrPlanOwnerConflict
	}
	if input.Installments < 1 {
		return nil, apperrors.WithFields(
			apperrors.WithMessage(apperrors.ErrInvalidInput, "La cantidad de cuotas debe ser al menos 1"),
			"installments",
		)
	}
	if input.StartDate.IsZero() {
		return nil, apperrors.WithFields(
			apperrors.WithMessage(apperrors.ErrInvalidInput, "La fecha de inicio es obligatoria"),
			"start_date",
		)
	}

	plan := &models.PaymentPlan{
		ExpenseID:        input.ExpenseID,
		FixedExpenseID:   input.FixedExpenseID,
		PaymentTypeID:    input.PaymentTypeID,
		BankEntityID:     input.BankEntityID,
		InflationIndexed: input.InflationIndexed,
		Installments:     input.Installments,
		StartDate:        input.StartDate,
	}

	if err := s.db.Create(plan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plan, nil
}

// GetByID returns a payment plan by id.
func (s *paymentPlanService) GetByID(id uint) (*models.PaymentPlan, error) {
	var plan models.PaymentPlan
	if err := s.db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentPlanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &plan, nil
}

// ListByFixedExpense returns all plans generated under a recurring template,
// oldest first, so the caller can show an installment schedule.
func (s *paymentPlanService) ListByFixedExpense(fixedExpenseID uint) ([]models.PaymentPlan, error) {
	var plans []models.PaymentPlan
	if err := s.db.
		Where("fixed_expense_id = ?", fixedExpenseID).
		Order("start_date, id").
		Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plans, nil
}

// Delete removes a plan. There is no existence precondition: deleting an id
// that does not exist is still a success from the caller's perspective.
func (s *paymentPlanService) Delete(id uint) error {
	if err := s.db.Delete(&models.PaymentPlan{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
