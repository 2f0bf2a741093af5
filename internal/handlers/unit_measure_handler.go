package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gastor/internal/services"
)

// UnitMeasureHandler handles unit measure requests. Unit measures are the
// only catalog with full CRUD.
type UnitMeasureHandler struct {
	unitService  services.UnitMeasureServicer
	auditService services.AuditServicer
}

// NewUnitMeasureHandler creates a new UnitMeasureHandler.
func NewUnitMeasureHandler(unitService services.UnitMeasureServicer, auditService services.AuditServicer) *UnitMeasureHandler {
	return &UnitMeasureHandler{unitService: unitService, auditService: auditService}
}

// CreateUnitMeasureRequest is the payload for creating a unit measure.
type CreateUnitMeasureRequest struct {
	Name         string `json:"name" binding:"required,notblank,max=100"`
	Abbreviation string `json:"abbreviation" binding:"max=20"`
	Description  string `json:"description" binding:"max=500"`
}

// UpdateUnitMeasureRequest is the payload for updating a unit measure.
// Absent fields are left unchanged.
type UpdateUnitMeasureRequest struct {
	Name         *string `json:"name" binding:"omitempty,notblank,max=100"`
	Abbreviation *string `json:"abbreviation" binding:"omitempty,max=20"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
}

// Create handles the creation of a new unit measure.
// @Summary     Create a unit measure
// @Tags        unit-measures
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateUnitMeasureRequest true "Unit measure details"
// @Success     201 {object} models.UnitMeasure
// @Failure     400 {object} ErrorResponse
// @Router      /unit-measures [post]
func (h *UnitMeasureHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateUnitMeasureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	unit, err := h.unitService.Create(req.Name, req.Abbreviation, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "unit_measure.create", "unit_measure", unit.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})
	c.JSON(http.StatusCreated, unit)
}

// List returns all unit measures.
// @Summary     List unit measures
// @Tags        unit-measures
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.UnitMeasure
// @Failure     500 {object} ErrorResponse
// @Router      /unit-measures [get]
func (h *UnitMeasureHandler) List(c *gin.Context) {
	units, err := h.unitService.List()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// GetByID returns a single unit measure.
// @Summary     Get unit measure by ID
// @Tags        unit-measures
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Unit measure ID"
// @Success     200 {object} models.UnitMeasure
// @Failure     404 {object} ErrorResponse
// @Router      /unit-measures/{id} [get]
func (h *UnitMeasureHandler) GetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	unit, err := h.unitService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// Update modifies an existing unit measure. A missing target id maps to
// 404; every other failure is unexpected.
// @Summary     Update a unit measure
// @Tags        unit-measures
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Unit measure ID"
// @Param       request body UpdateUnitMeasureRequest true "Updated fields"
// @Success     200 {object} models.UnitMeasure
// @Failure     404 {object} ErrorResponse
// @Router      /unit-measures/{id} [put]
func (h *UnitMeasureHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateUnitMeasureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	unit, err := h.unitService.Update(id, req.Name, req.Abbreviation, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "unit_measure.update", "unit_measure", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, unit)
}

// Delete removes a unit measure; idempotent like payment plan deletion.
// @Summary     Delete a unit measure
// @Tags        unit-measures
// @Security    BearerAuth
// @Param       id path int true "Unit measure ID"
// @Success     204 "Deleted"
// @Failure     500 {object} ErrorResponse
// @Router      /unit-measures/{id} [delete]
func (h *UnitMeasureHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.unitService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "unit_measure.delete", "unit_measure", id, c.ClientIP(), nil)
	c.Status(http.StatusNoContent)
}
