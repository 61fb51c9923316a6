package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MischieS/agenta-sub001/internal/service"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

// respondServiceError maps service sentinel errors to HTTP responses.
// Anything unrecognized is a 500 with no detail leaked to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "Record not found")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, "Email already in use")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, "Operation not permitted")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, "Unknown role")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, "Unknown student status")
	default:
		response.InternalError(c)
	}
}

// pagination reads limit/offset query params with sane bounds
func pagination(c *gin.Context) (int, int) {
	limit := intQuery(c, "limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := intQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
