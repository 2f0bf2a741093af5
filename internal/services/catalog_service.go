package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "gastor/internal/errors"
)

// CatalogOption configures a catalog service instance.
type CatalogOption func(*catalogSettings)

type catalogSettings struct {
	activeOnly bool
	orderBy    string
}

// ActiveOnly restricts the catalog to rows where is_active is true.
// Deactivation is not exposed by this surface, so retired rows are
// invisible to every operation, including GetByID.
func ActiveOnly() CatalogOption {
	return func(s *catalogSettings) { s.activeOnly = true }
}

// OrderBy sets the ordering applied to List. Without it the store-assigned
// order is preserved.
func OrderBy(expr string) CatalogOption {
	return func(s *catalogSettings) { s.orderBy = expr }
}

// catalogService is the one typed repository behind every catalog kind.
// The not-found sentinel is injected per kind so the endpoint layer can
// answer with a resource-specific message.
type catalogService[T any] struct {
	db       *gorm.DB
	notFound *apperrors.AppError
	catalogSettings
}

// NewCatalogService creates a CatalogServicer for the given row type.
func NewCatalogService[T any](db *gorm.DB, notFound *apperrors.AppError, opts ...CatalogOption) CatalogServicer[T] {
	s := &catalogService[T]{db: db, notFound: notFound}
	for _, opt := range opts {
		opt(&s.catalogSettings)
	}
	return s
}

// List returns the visible catalog rows.
func (s *catalogService[T]) List() ([]T, error) {
	q := s.db.Model(new(T))
	if s.activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if s.orderBy != "" {
		q = q.Order(s.orderBy)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// GetByID returns a single row, or the kind's not-found sentinel.
func (s *catalogService[T]) GetByID(id uint) (*T, error) {
	q := s.db
	if s.activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var row T
	if err := q.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}

// Create appends a row. Uniqueness beyond what the store schema enforces is
// deliberately not checked here.
func (s *catalogService[T]) Create(row *T) error {
	if err := s.db.Create(row).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
