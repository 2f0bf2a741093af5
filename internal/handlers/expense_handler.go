package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "gastor/internal/errors"
	"gastor/internal/services"
)

// ExpenseSubcategoryHandler handles expense subcategory requests.
type ExpenseSubcategoryHandler struct {
	subcategoryService services.ExpenseSubcategoryServicer
	auditService       services.AuditServicer
}

// NewExpenseSubcategoryHandler creates a new ExpenseSubcategoryHandler.
func NewExpenseSubcategoryHandler(subcategoryService services.ExpenseSubcategoryServicer, auditService services.AuditServicer) *ExpenseSubcategoryHandler {
	return &ExpenseSubcategoryHandler{subcategoryService: subcategoryService, auditService: auditService}
}

// CreateSubcategoryRequest is the payload for creating a subcategory.
type CreateSubcategoryRequest struct {
	Name       string `json:"name" binding:"required,notblank,max=100"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

// List returns subcategories, optionally filtered by owning category.
// @Summary     List expense subcategories
// @Description List all subcategories, or only those under the given category. An unknown category yields an empty list.
// @Tags        expense-catalogs
// @Produce     json
// @Security    BearerAuth
// @Param       categoryId query int false "Owning category ID"
// @Success     200 {array} models.ExpenseSubcategory
// @Failure     500 {object} ErrorResponse
// @Router      /expense-subcategories [get]
func (h *ExpenseSubcategoryHandler) List(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondWithError(c, apperrors.WithFields(
				apperrors.WithMessage(apperrors.ErrInvalidInput, "Identificador de categoría inválido"),
				"categoryId",
			))
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	subcategories, err := h.subcategoryService.List(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

// GetByID returns a single subcategory.
func (h *ExpenseSubcategoryHandler) GetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	subcategory, err := h.subcategoryService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

// Create appends a subcategory under an existing category.
// @Summary     Create an expense subcategory
// @Tags        expense-catalogs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSubcategoryRequest true "Subcategory details"
// @Success     201 {object} models.ExpenseSubcategory
// @Failure     400 {object} ErrorResponse
// @Failure     404 {object} ErrorResponse "Parent category not found"
// @Router      /expense-subcategories [post]
func (h *ExpenseSubcategoryHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	subcategory, err := h.subcategoryService.Create(req.Name, req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "expense_subcategory.create", "expense_subcategory", subcategory.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "category_id": req.CategoryID})
	c.JSON(http.StatusCreated, subcategory)
}
