package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/service"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

// StudentHandler handles application intake and student administration
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new StudentHandler
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Apply registers a new applicant. This is the only unauthenticated
// write endpoint.
// POST /api/v1/applications
func (h *StudentHandler) Apply(c *gin.Context) {
	var req dto.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.Error(c, http.StatusBadRequest, "INVALID_EMAIL", msg)
		return
	}

	student, err := h.studentService.Apply(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, student.Sanitized())
}

// List returns students
// GET /api/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	students, err := h.studentService.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]interface{}, 0, len(students))
	for _, s := range students {
		out = append(out, s.Sanitized())
	}
	response.Success(c, out)
}

// Get returns a single student
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.studentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, student.Sanitized())
}

// Update modifies a student record with the full staff-side field set
// PATCH /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, student.Sanitized())
}

// Delete removes a student record
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// Assign pairs a student with an advising staff member and flips the
// student to assigned status
// POST /api/v1/students/:id/assign
func (h *StudentHandler) Assign(c *gin.Context) {
	var req dto.AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	student, err := h.studentService.Assign(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, student.Sanitized())
}
