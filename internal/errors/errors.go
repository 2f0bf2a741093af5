// Package errors defines the application error taxonomy: validation
// failures, not-found conditions, and unexpected internal errors. Handlers
// map AppError values to HTTP responses by pattern matching with errors.As;
// anything else becomes a generic 500. Client-facing messages are localized
// (Spanish); codes are stable identifiers and internal details never leave
// the server.
package errors

import "net/http"

// AppError is a structured application error. Fields lists the input fields
// that violated validation, when applicable. Internal carries the underlying
// cause for server-side logging only.
type AppError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Fields     []string `json:"fields,omitempty"`
	StatusCode int      `json:"-"`
	Internal   error    `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as its cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Fields:     sentinel.Fields,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithFields returns a copy of sentinel echoing the violated fields.
func WithFields(sentinel *AppError, fields ...string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Fields:     fields,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Autenticación requerida", StatusCode: http.StatusUnauthorized}
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Entrada inválida", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Ocurrió un error interno", StatusCode: http.StatusInternalServerError}
)

// Catalog not-found errors, one per kind so clients get a resource-specific
// message.
var (
	ErrBankEntityNotFound         = &AppError{Code: "BANK_ENTITY_NOT_FOUND", Message: "Entidad bancaria no encontrada", StatusCode: http.StatusNotFound}
	ErrPaymentMethodNotFound      = &AppError{Code: "PAYMENT_METHOD_NOT_FOUND", Message: "Método de pago no encontrado", StatusCode: http.StatusNotFound}
	ErrPaymentTypeNotFound        = &AppError{Code: "PAYMENT_TYPE_NOT_FOUND", Message: "Tipo de pago no encontrado", StatusCode: http.StatusNotFound}
	ErrReceiptTypeNotFound        = &AppError{Code: "RECEIPT_TYPE_NOT_FOUND", Message: "Tipo de comprobante no encontrado", StatusCode: http.StatusNotFound}
	ErrExpenseCategoryNotFound    = &AppError{Code: "EXPENSE_CATEGORY_NOT_FOUND", Message: "Categoría de gasto no encontrada", StatusCode: http.StatusNotFound}
	ErrExpenseSubcategoryNotFound = &AppError{Code: "EXPENSE_SUBCATEGORY_NOT_FOUND", Message: "Subcategoría de gasto no encontrada", StatusCode: http.StatusNotFound}
	ErrExpenseTypeNotFound        = &AppError{Code: "EXPENSE_TYPE_NOT_FOUND", Message: "Tipo de gasto no encontrado", StatusCode: http.StatusNotFound}
	ErrRecurrenceTypeNotFound     = &AppError{Code: "RECURRENCE_TYPE_NOT_FOUND", Message: "Tipo de recurrencia no encontrado", StatusCode: http.StatusNotFound}
	ErrUnitMeasureNotFound        = &AppError{Code: "UNIT_MEASURE_NOT_FOUND", Message: "Unidad de medida no encontrada", StatusCode: http.StatusNotFound}
)

// Payment plan errors. A plan must reference exactly one owner: either a
// direct expense or a recurring fixed-expense template.
var (
	ErrPaymentPlanNotFound = &AppError{Code: "PAYMENT_PLAN_NOT_FOUND", Message: "Plan de pago no encontrado", StatusCode: http.StatusNotFound}
	ErrPlanOwnerRequired   = &AppError{Code: "PLAN_OWNER_REQUIRED", Message: "El plan de pago debe referenciar un gasto o un gasto fijo", Fields: []string{"expense_id", "fixed_expense_id"}, StatusCode: http.StatusBadRequest}
	ErrPlanOwnerConflict   = &AppError{Code: "PLAN_OWNER_CONFLICT", Message: "El plan de pago no puede referenciar un gasto y un gasto fijo a la vez", Fields: []string{"expense_id", "fixed_expense_id"}, StatusCode: http.StatusBadRequest}
)

// Prospect errors.
var (
	ErrProspectNotFound = &AppError{Code: "PROSPECT_NOT_FOUND", Message: "Prospecto no encontrado", StatusCode: http.StatusNotFound}
)
