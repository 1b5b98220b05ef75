package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/validation"
	"github.com/SscSPs/adminpro/pkg/response"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrPolicy):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError logs err at a level matching its status and writes the error envelope.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(action+" failed", slog.String("error", err.Error()))
	} else {
		logger.Warn(action+" rejected", slog.String("error", err.Error()), slog.Int("status", status))
	}
	response.Error(c, status, err.Error())
}

// writeBindError reports a request that failed binding or validation.
func writeBindError(c *gin.Context, logger *slog.Logger, err error, action string) {
	logger.Warn("Failed to bind request for "+action, slog.String("error", err.Error()))
	env := response.NewError(validation.Message(err))
	env.Errors = validation.ToDetails(err)
	c.JSON(http.StatusBadRequest, env)
}
