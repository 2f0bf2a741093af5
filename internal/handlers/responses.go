package handlers

import apperrors "gastor/internal/errors"

// ErrorResponse documents the unified error envelope in the API docs.
type ErrorResponse struct {
	Error apperrors.AppError `json:"error"`
}
