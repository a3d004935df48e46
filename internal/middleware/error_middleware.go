package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huyndq/school-admin/internal/app/models/dto"
	"github.com/huyndq/school-admin/internal/pkg/apperrors"
	"github.com/huyndq/school-admin/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Every failure comes
// back as a structured envelope with success=false and a human-readable
// message; internals are logged, never exposed.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email"),
		))

	case errors.Is(err, apperrors.ErrPositionCodeExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Position code already exists").WithField("code"),
		))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		))

	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrTeacherNotFound, apperrors.ErrPositionNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		))

	case errors.Is(err, apperrors.ErrMissingJoin):
		// The record persisted but cannot be rendered: a data fault rather
		// than bad input.
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Data integrity fault")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDataIntegrity, "Stored record could not be formatted").WithSeverity(dto.ErrorSeverityCritical),
		))

	case errors.Is(err, apperrors.ErrTeacherCodeExhausted):
		logger.Error().Err(err).Msg("Teacher code generation exhausted its retry budget")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Could not allocate a unique teacher code"),
		))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
