package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/middleware"
	"github.com/MischieS/agenta-sub001/internal/service"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

// UserHandler handles profile and staff-account HTTP requests
type UserHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authService service.AuthService, userService service.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// Profile returns the authenticated principal, whichever kind it is
// GET /api/v1/users/profile
func (h *UserHandler) Profile(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	response.Success(c, dto.NewPrincipalResponse(principal))
}

// UpdateProfile updates the authenticated staff member's own record
// PATCH /api/v1/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	if principal.IsStudent {
		response.Forbidden(c, "Staff account required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateUserProfile(c.Request.Context(), principal.ID(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, user.Sanitized())
}

// UpdateStudentSelf updates the authenticated student's own record.
// The editable field set is narrower than the staff-side update.
// PATCH /api/v1/users/student
func (h *UserHandler) UpdateStudentSelf(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	if !principal.IsStudent {
		response.Forbidden(c, "Student account required")
		return
	}

	var req dto.UpdateStudentSelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	student, err := h.authService.UpdateStudentProfile(c.Request.Context(), principal.ID(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, student.Sanitized())
}

// Create provisions a staff account
// POST /api/v1/admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, user.Sanitized())
}

// List returns staff accounts
// GET /api/v1/admin/users
func (h *UserHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	users, err := h.userService.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]interface{}, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	response.Success(c, out)
}

// Get returns a single staff account
// GET /api/v1/admin/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, user.Sanitized())
}

// Update modifies a staff account
// PATCH /api/v1/admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, user.Sanitized())
}

// Delete removes a staff account
// DELETE /api/v1/admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
