package dto

import "time"

// ApplicationRequest is the public selection-wizard intake payload.
// It creates a pending student account.
type ApplicationRequest struct {
	Name        string     `json:"name" binding:"required,min=2"`
	Surname     string     `json:"surname" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	Password    string     `json:"password" binding:"required,min=6"`
	Phone       string     `json:"phone"`
	Birthdate   *time.Time `json:"birthdate,omitempty"`
	Country     string     `json:"country"`
	Address     string     `json:"address"`
	DegreeType  string     `json:"degree_type"`
	Departments []string   `json:"departments"`
}

// Validate applies the stricter email shape check
func (r *ApplicationRequest) Validate() (bool, string) {
	if !emailRegex.MatchString(r.Email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// UpdateStudentSelfRequest is a student's own partial profile update
type UpdateStudentSelfRequest struct {
	Name        *string    `json:"name,omitempty"`
	Surname     *string    `json:"surname,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Birthdate   *time.Time `json:"birthdate,omitempty"`
	Country     *string    `json:"country,omitempty"`
	Address     *string    `json:"address,omitempty"`
	DegreeType  *string    `json:"degree_type,omitempty"`
	Departments []string   `json:"departments,omitempty"`
	Link        *string    `json:"link,omitempty"`
}

// UpdateStudentRequest is the admin edit-form partial update. It can
// touch anything the self update can, plus the status tag.
type UpdateStudentRequest struct {
	UpdateStudentSelfRequest
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Status *string `json:"status,omitempty"`
}

// AssignStaffRequest links a staff member to a student
type AssignStaffRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}
