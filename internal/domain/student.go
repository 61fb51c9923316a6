package domain

import (
	"time"
)

// StudentStatus tracks where a student sits in the advising pipeline
type StudentStatus string

const (
	StudentStatusPending  StudentStatus = "pending"
	StudentStatusAssigned StudentStatus = "assigned"
)

// Student is an applicant account. Students live in their own table,
// disjoint from staff accounts; the two share only the token scheme.
type Student struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Surname        string        `json:"surname"`
	Email          string        `json:"email"`
	PasswordHash   string        `json:"-"` // Never serialize password
	Phone          string        `json:"phone,omitempty"`
	Birthdate      *time.Time    `json:"birthdate,omitempty"`
	Country        string        `json:"country,omitempty"`
	Address        string        `json:"address,omitempty"`
	DegreeType     string        `json:"degree_type,omitempty"`
	Departments    []string      `json:"departments,omitempty"`
	Status         StudentStatus `json:"status"`
	AssignedUserID *string       `json:"assigned_user_id,omitempty"`
	Link           string        `json:"link,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Sanitized returns a copy with the password hash removed
func (s *Student) Sanitized() *Student {
	if s == nil {
		return nil
	}
	clean := *s
	clean.PasswordHash = ""
	return &clean
}
