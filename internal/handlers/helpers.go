// Package handlers contains the HTTP endpoint layer: one handler per
// resource, each translating request parameters into a service call and
// mapping the outcome to a status code.
package handlers

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "gastor/internal/errors"
	"gastor/internal/logger"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	return userID.(uint), nil
}

// parsePathID parses a uint path parameter. Returns ErrInvalidInput if the
// parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithFields(
			apperrors.WithMessage(apperrors.ErrInvalidInput, "Identificador inválido"),
			param,
		)
	}
	return uint(id), nil
}

// bindingError converts a Gin binding failure into a validation AppError
// echoing the violated fields.
func bindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, toSnake(fe.Field()))
		}
		return apperrors.WithFields(apperrors.ErrInvalidInput, fields...)
	}
	return apperrors.ErrInvalidInput
}

// toSnake converts a Go field name to its snake_case JSON counterpart.
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(rune(name[i-1]))
			nextLower := i+1 < len(name) && unicode.IsLower(rune(name[i+1]))
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// asAppError normalizes any error to an AppError suitable for the client.
// Internal detail is logged here and stripped from what goes on the wire.
func asAppError(c *gin.Context, err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		return appErr
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	return apperrors.ErrInternalServer
}

// respondWithError writes the unified JSON error envelope.
func respondWithError(c *gin.Context, err error) {
	appErr := asAppError(c, err)
	c.JSON(appErr.StatusCode, gin.H{"error": appErr})
}
