package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talkwheel/talkwheel/pkg/runstore"
	"github.com/talkwheel/talkwheel/pkg/services"
)

// abortWithServiceError maps service-layer errors to HTTP responses.
func abortWithServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validErr.Error()})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, runstore.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "resource already exists"})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrConcurrentModification), errors.Is(err, runstore.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "resource was modified concurrently"})
	case errors.Is(err, runstore.ErrAlreadyFinal):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "run is already in a terminal state"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
