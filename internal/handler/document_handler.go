package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/middleware"
	"github.com/MischieS/agenta-sub001/internal/service"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

// DocumentHandler handles application-document metadata endpoints
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Create records an uploaded document for a student
// POST /api/v1/students/:id/documents
func (h *DocumentHandler) Create(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), principal, c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, doc)
}

// ListByStudent returns a student's document metadata
// GET /api/v1/students/:id/documents
func (h *DocumentHandler) ListByStudent(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	docs, err := h.documentService.ListByStudent(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, docs)
}
