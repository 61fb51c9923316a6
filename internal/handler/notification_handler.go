package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MischieS/agenta-sub001/internal/middleware"
	"github.com/MischieS/agenta-sub001/internal/service"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

// NotificationHandler handles in-app notification endpoints
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List returns the authenticated principal's notifications
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	limit, offset := pagination(c)
	notifications, err := h.notificationService.List(c.Request.Context(), principal, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, notifications)
}

// MarkRead flags a notification as read. Only the recipient may do so.
// POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), principal, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"read": true})
}
