package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "gastor/internal/errors"
	"gastor/internal/models"
)

// expenseSubcategoryService handles subcategory access. Subcategories are a
// catalog, but listing takes an optional parent filter, so they get their
// own service instead of the generic one.
type expenseSubcategoryService struct {
	db *gorm.DB
}

// NewExpenseSubcategoryService creates a new ExpenseSubcategoryServicer.
func NewExpenseSubcategoryService(db *gorm.DB) ExpenseSubcategoryServicer {
	return &expenseSubcategoryService{db: db}
}

// List returns all subcategories, or only those under categoryID when given.
// The category id is not checked for existence: an unknown id simply
// matches nothing.
func (s *expenseSubcategoryService) List(categoryID *uint) ([]models.ExpenseSubcategory, error) {
	q := s.db.Model(&models.ExpenseSubcategory{})
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}

	var subcategories []models.ExpenseSubcategory
	if err := q.Find(&subcategories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return subcategories, nil
}

// GetByID returns a single subcategory.
func (s *expenseSubcategoryService) GetByID(id uint) (*models.ExpenseSubcategory, error) {
	var subcategory models.ExpenseSubcategory
	if err := s.db.First(&subcategory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseSubcategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &subcategory, nil
}

// Create appends a subcategory under an existing category.
func (s *expenseSubcategoryService) Create(name string, categoryID uint) (*models.ExpenseSubcategory, error) {
	var parent models.ExpenseCategory
	if err := s.db.First(&parent, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrExpenseCategoryNotFound, "Categoría padre no encontrada")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	subcategory := &models.ExpenseSubcategory{Name: name, CategoryID: categoryID}
	if err := s.db.Create(subcategory).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return subcategory, nil
}
