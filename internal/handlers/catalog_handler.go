package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gastor/internal/services"
)

// CreateCatalogRequest is the payload for appending a row to a name catalog.
type CreateCatalogRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

// CatalogHandler serves a single catalog kind. List and GetByID exist for
// every kind; Create is wired only for append-able catalogs, where build
// builds the row from the validated name.
type CatalogHandler[T any] struct {
	service  services.CatalogServicer[T]
	audit    services.AuditServicer
	resource string
	build    func(name string) *T
}

// NewCatalogHandler creates a handler for a read-only catalog.
func NewCatalogHandler[T any](service services.CatalogServicer[T], resource string) *CatalogHandler[T] {
	return &CatalogHandler[T]{service: service, resource: resource}
}

// NewAppendableCatalogHandler creates a handler for a create+read catalog.
func NewAppendableCatalogHandler[T any](
	service services.CatalogServicer[T],
	audit services.AuditServicer,
	resource string,
	build func(name string) *T,
) *CatalogHandler[T] {
	return &CatalogHandler[T]{service: service, audit: audit, resource: resource, build: build}
}

// List returns all visible rows of the catalog.
func (h *CatalogHandler[T]) List(c *gin.Context) {
	rows, err := h.service.List()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetByID returns a single catalog row.
func (h *CatalogHandler[T]) GetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	row, err := h.service.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Create appends a row to the catalog.
func (h *CatalogHandler[T]) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	row := h.build(req.Name)
	if err := h.service.Create(row); err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(userID, h.resource+".create", h.resource, rowID(row), c.ClientIP(),
		map[string]interface{}{"name": req.Name})
	c.JSON(http.StatusCreated, row)
}

// rowID extracts the assigned id from a created row via its embedded Base.
func rowID(row interface{}) uint {
	if b, ok := row.(interface{ GetID() uint }); ok {
		return b.GetID()
	}
	return 0
}
