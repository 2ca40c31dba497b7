package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/logger"
)

func abortWithError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// HandleAPIError maps service and repository errors to HTTP responses.
// Unknown errors become a generic 500 and are logged with their cause.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.Message(err, "Validation failed"))
		if field := apperrors.Field(err); field != "" {
			detail = detail.WithField(field)
		}
		abortWithError(c, http.StatusBadRequest, detail)
	case errors.Is(err, apperrors.ErrBadRequest):
		abortWithError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, apperrors.Message(err, "Bad request")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWithError(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.Message(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		abortWithError(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, apperrors.Message(err, "Resource already exists")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		abortWithError(c, http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeForbidden, apperrors.Message(err, "Permission denied")))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		abortWithError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		abortWithError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"))
	case errors.Is(err, apperrors.ErrTokenRevoked):
		abortWithError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked"))
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		abortWithError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))
	default:
		logger.Error().Err(err).
			Str("requestId", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
