package dto

// UpdateProfileRequest is a staff self-service partial update.
// Pointer fields distinguish "absent" from "set to empty".
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Surname *string `json:"surname,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Link    *string `json:"link,omitempty"`
}

// CreateUserRequest creates a staff account (admin only)
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Surname  string `json:"surname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// UpdateUserRequest is an admin partial update of a staff account
type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty"`
	Surname *string `json:"surname,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Role    *string `json:"role,omitempty"`
	Link    *string `json:"link,omitempty"`
}
