package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-pill-timer/internal/app"
)

func handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrStoreWriteFailed) {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "store_write_failed",
			Message: "the store rejected the write",
		})

		return
	}

	slog.ErrorContext(c.Request.Context(), "unhandled error",
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
	})
}

func bindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
