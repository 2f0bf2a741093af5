package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "gastor/internal/errors"
	"gastor/internal/models"
	"gastor/internal/pagination"
)

// prospectService handles lead intake. Prospects are append-only and the
// intake endpoint is public, so there is no duplicate-mail check here.
type prospectService struct {
	db *gorm.DB
}

// NewProspectService creates a new ProspectServicer.
func NewProspectService(db *gorm.DB) ProspectServicer {
	return &prospectService{db: db}
}

// Create persists a new lead.
func (s *prospectService) Create(name, mail string) (*models.Prospect, error) {
	prospect := &models.Prospect{Name: name, Mail: mail}
	if err := s.db.Create(prospect).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return prospect, nil
}

// List returns a page of prospects, newest first.
func (s *prospectService) List(page pagination.PageRequest) (*pagination.PageResponse[models.Prospect], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Prospect{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var prospects []models.Prospect
	if err := base.Order("created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&prospects).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(prospects, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetByID returns a prospect, or (nil, nil) when it does not exist. Unlike
// the other services, absence is not an error here; the handler owns the
// 404 mapping for this resource.
func (s *prospectService) GetByID(id uint) (*models.Prospect, error) {
	var prospect models.Prospect
	if err := s.db.First(&prospect, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &prospect, nil
}
