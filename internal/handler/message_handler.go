package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/middleware"
	"github.com/MischieS/agenta-sub001/internal/service"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

// MessageHandler handles advising-conversation endpoints
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send posts a message into an advising conversation. Students write
// to their own conversation; staff must name the student.
// POST /api/v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.messageService.Send(c.Request.Context(), principal, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, msg)
}

// ListConversation returns a conversation's messages in order.
// Students can only read their own conversation regardless of the
// student_id parameter.
// GET /api/v1/messages?student_id=
func (h *MessageHandler) ListConversation(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	limit, offset := pagination(c)
	messages, err := h.messageService.ListConversation(c.Request.Context(), principal, c.Query("student_id"), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, messages)
}
