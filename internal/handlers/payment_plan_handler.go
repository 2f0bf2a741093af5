package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "gastor/internal/errors"
	"gastor/internal/services"
)

// PaymentPlanHandler handles payment plan requests.
type PaymentPlanHandler struct {
	planService  services.PaymentPlanServicer
	auditService services.AuditServicer
}

// NewPaymentPlanHandler creates a new PaymentPlanHandler.
func NewPaymentPlanHandler(planService services.PaymentPlanServicer, auditService services.AuditServicer) *PaymentPlanHandler {
	return &PaymentPlanHandler{planService: planService, auditService: auditService}
}

// CreatePaymentPlanRequest is the payload for creating a payment plan.
// Exactly one of expense_id and fixed_expense_id must be set.
type CreatePaymentPlanRequest struct {
	ExpenseID        *uint  `json:"expense_id"`
	FixedExpenseID   *uint  `json:"fixed_expense_id"`
	PaymentTypeID    uint   `json:"payment_type_id" binding:"required"`
	BankEntityID     uint   `json:"bank_entity_id" binding:"required"`
	InflationIndexed bool   `json:"inflation_indexed"`
	Installments     int    `json:"installments" binding:"required,min=1"`
	StartDate        string `json:"start_date" binding:"required,datetime=2006-01-02"`
}

// Create handles the creation of a new payment plan.
// @Summary     Create a payment plan
// @Description Create a payment plan owned by exactly one of an expense or a fixed expense.
// @Tags        payment-plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePaymentPlanRequest true "Plan details"
// @Success     201 {object} models.PaymentPlan
// @Failure     400 {object} ErrorResponse "Invalid input or owner reference"
// @Failure     500 {object} ErrorResponse
// @Router      /payment-plans [post]
func (h *PaymentPlanHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePaymentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		respondWithError(c, apperrors.WithFields(
			apperrors.WithMessage(apperrors.ErrInvalidInput, "Fecha de inicio inválida"),
			"start_date",
		))
		return
	}

	plan, err := h.planService.Create(services.PaymentPlanInput{
		ExpenseID:        req.ExpenseID,
		FixedExpenseID:   req.FixedExpenseID,
		PaymentTypeID:    req.PaymentTypeID,
		BankEntityID:     req.BankEntityID,
		InflationIndexed: req.InflationIndexed,
		Installments:     req.Installments,
		StartDate:        startDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "payment_plan.create", "payment_plan", plan.ID, c.ClientIP(),
		map[string]interface{}{"installments": req.Installments, "payment_type_id": req.PaymentTypeID})
	c.JSON(http.StatusCreated, plan)
}

// GetByID returns a payment plan by id.
// @Summary     Get payment plan by ID
// @Tags        payment-plans
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Plan ID"
// @Success     200 {object} models.PaymentPlan
// @Failure     404 {object} ErrorResponse
// @Router      /payment-plans/{id} [get]
func (h *PaymentPlanHandler) GetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.planService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListByFixedExpense returns all plans generated under a recurring template.
// @Summary     List payment plans of a fixed expense
// @Tags        payment-plans
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Fixed expense ID"
// @Success     200 {array} models.PaymentPlan
// @Failure     500 {object} ErrorResponse
// @Router      /payment-plans/fixed-expense/{id} [get]
func (h *PaymentPlanHandler) ListByFixedExpense(c *gin.Context) {
	fixedExpenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	plans, err := h.planService.ListByFixedExpense(fixedExpenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Delete removes a payment plan. Deleting an id that no longer exists is
// still a 204; the operation is idempotent from the caller's perspective.
// @Summary     Delete a payment plan
// @Tags        payment-plans
// @Security    BearerAuth
// @Param       id path int true "Plan ID"
// @Success     204 "Deleted"
// @Failure     500 {object} ErrorResponse
// @Router      /payment-plans/{id} [delete]
func (h *PaymentPlanHandler) Delete(c *gin.Context) {
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

	if err := h.planService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "payment_plan.delete", "payment_plan", id, c.ClientIP(), nil)
	c.Status(http.StatusNoContent)
}
