package dto

import (
	"regexp"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

// emailRegex is a simplified RFC 5322 check applied on top of gin's
// binding validation
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// LoginRequest represents a login attempt. The password length floor
// is request hygiene, not a security control.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Validate applies the stricter email shape check
func (r *LoginRequest) Validate() (bool, string) {
	if !emailRegex.MatchString(r.Email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// PrincipalResponse is the client-facing view of an authenticated
// identity. Exactly one of User or Student is populated.
type PrincipalResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	IsStudent bool            `json:"isStudent"`
	User      *domain.User    `json:"user,omitempty"`
	Student   *domain.Student `json:"student,omitempty"`
}

// NewPrincipalResponse converts a resolved principal to its wire shape
func NewPrincipalResponse(p *domain.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:        p.ID(),
		Email:     p.Email(),
		IsStudent: p.IsStudent,
		User:      p.User,
		Student:   p.Student,
	}
}

// LoginResponse represents a successful login
type LoginResponse struct {
	User  PrincipalResponse `json:"user"`
	Token string            `json:"token"`
}
