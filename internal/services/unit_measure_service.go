package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "gastor/internal/errors"
	"gastor/internal/models"
)

// unitMeasureService handles unit measure business logic. Unit measures are
// the only catalog with a full lifecycle.
type unitMeasureService struct {
	db *gorm.DB
}

// NewUnitMeasureService creates a new UnitMeasureServicer.
func NewUnitMeasureService(db *gorm.DB) UnitMeasureServicer {
	return &unitMeasureService{db: db}
}

// Create persists a new unit measure.
func (s *unitMeasureService) Create(name, abbreviation, description string) (*models.UnitMeasure, error) {
	unit := &models.UnitMeasure{
		Name:         name,
		Abbreviation: abbreviation,
		Description:  description,
	}
	if err := s.db.Create(unit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return unit, nil
}

// List returns all unit measures.
func (s *unitMeasureService) List() ([]models.UnitMeasure, error) {
	var units []models.UnitMeasure
	if err := s.db.Find(&units).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return units, nil
}

// GetByID returns a unit measure by id.
func (s *unitMeasureService) GetByID(id uint) (*models.UnitMeasure, error) {
	var unit models.UnitMeasure
	if err := s.db.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnitMeasureNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &unit, nil
}

// Update modifies the provided fields. A missing target id is the one
// expected failure of this operation and maps to not-found; the store is
// left unchanged in that case.
func (s *unitMeasureService) Update(id uint, name, abbreviation, description *string) (*models.UnitMeasure, error) {
	unit, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		updates["name"] = *name
	}
	if abbreviation != nil {
		updates["abbreviation"] = *abbreviation
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(unit).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return unit, nil
}

// Delete removes a unit measure without an existence precondition; deleting
// a missing id is indistinguishable from success.
func (s *unitMeasureService) Delete(id uint) error {
	if err := s.db.Delete(&models.UnitMeasure{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
