package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/service"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

// UniversityHandler handles the university catalog endpoints
type UniversityHandler struct {
	universityService service.UniversityService
}

// NewUniversityHandler creates a new UniversityHandler
func NewUniversityHandler(universityService service.UniversityService) *UniversityHandler {
	return &UniversityHandler{universityService: universityService}
}

// List returns active universities
// GET /api/v1/universities
func (h *UniversityHandler) List(c *gin.Context) {
	universities, err := h.universityService.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, universities)
}

// Get returns a single university
// GET /api/v1/universities/:id
func (h *UniversityHandler) Get(c *gin.Context) {
	university, err := h.universityService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, university)
}

// Create adds a catalog entry
// POST /api/v1/admin/universities
func (h *UniversityHandler) Create(c *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	university, err := h.universityService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, university)
}

// Update modifies a catalog entry
// PATCH /api/v1/admin/universities/:id
func (h *UniversityHandler) Update(c *gin.Context) {
	var req dto.UpdateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	university, err := h.universityService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, university)
}

// Delete removes a catalog entry
// DELETE /api/v1/admin/universities/:id
func (h *UniversityHandler) Delete(c *gin.Context) {
	if err := h.universityService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
