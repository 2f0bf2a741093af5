package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gastor/internal/errors"
	"gastor/internal/pagination"
	"gastor/internal/services"
)

// ProspectHandler handles lead intake. These endpoints are public and keep
// the {success, data} envelope the marketing site integrates against.
type ProspectHandler struct {
	prospectService services.ProspectServicer
}

// NewProspectHandler creates a new ProspectHandler.
func NewProspectHandler(prospectService services.ProspectServicer) *ProspectHandler {
	return &ProspectHandler{prospectService: prospectService}
}

// CreateProspectRequest is the payload for registering a lead.
type CreateProspectRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
	Mail string `json:"mail" binding:"required,email,max=254"`
}

// respondError writes the prospect error envelope: the unified error object
// plus the success flag this surface documents.
func (h *ProspectHandler) respondError(c *gin.Context, err error) {
	appErr := asAppError(c, err)
	c.JSON(appErr.StatusCode, gin.H{"success": false, "error": appErr})
}

// Create registers a new lead.
// @Summary     Register a prospect
// @Description Public lead-intake endpoint.
// @Tags        prospects
// @Accept      json
// @Produce     json
// @Param       request body CreateProspectRequest true "Prospect details"
// @Success     201 {object} map[string]interface{}
// @Failure     400 {object} ErrorResponse
// @Router      /prospects [post]
func (h *ProspectHandler) Create(c *gin.Context) {
	var req CreateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, bindingError(err))
		return
	}

	prospect, err := h.prospectService.Create(req.Name, req.Mail)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Prospecto registrado correctamente",
		"data":    prospect,
	})
}

// List returns a page of prospects with the total count.
// @Summary     List prospects
// @Tags        prospects
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} ErrorResponse
// @Router      /prospects [get]
func (h *ProspectHandler) List(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.respondError(c, bindingError(err))
		return
	}

	result, err := h.prospectService.List(page)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Data,
		"count":   result.TotalItems,
	})
}

// GetByID returns a single prospect. The service reports absence as a nil
// row, so the 404 mapping happens here.
// @Summary     Get prospect by ID
// @Tags        prospects
// @Produce     json
// @Param       id path int true "Prospect ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} ErrorResponse
// @Router      /prospects/{id} [get]
func (h *ProspectHandler) GetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	prospect, err := h.prospectService.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if prospect == nil {
		h.respondError(c, apperrors.ErrProspectNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": prospect})
}
