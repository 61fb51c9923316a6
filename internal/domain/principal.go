package domain

// Principal is the authenticated identity attached to a request.
// It is a tagged union over the two account tables: exactly one of
// User or Student is set, and IsStudent is the discriminator carried
// through from the token claims. Principals are request-scoped and
// always sanitized.
type Principal struct {
	IsStudent bool     `json:"isStudent"`
	User      *User    `json:"user,omitempty"`
	Student   *Student `json:"student,omitempty"`
}

// StaffPrincipal builds a principal from a staff account
func StaffPrincipal(u *User) *Principal {
	return &Principal{IsStudent: false, User: u.Sanitized()}
}

// StudentPrincipal builds a principal from a student account
func StudentPrincipal(s *Student) *Principal {
	return &Principal{IsStudent: true, Student: s.Sanitized()}
}

// ID returns the backing account's identifier
func (p *Principal) ID() string {
	if p.IsStudent {
		if p.Student == nil {
			return ""
		}
		return p.Student.ID
	}
	if p.User == nil {
		return ""
	}
	return p.User.ID
}

// Email returns the backing account's email
func (p *Principal) Email() string {
	if p.IsStudent {
		if p.Student == nil {
			return ""
		}
		return p.Student.Email
	}
	if p.User == nil {
		return ""
	}
	return p.User.Email
}

// Role returns the staff role, or empty for student principals.
// Students have no role; role gates deny them by construction.
func (p *Principal) Role() Role {
	if p.IsStudent || p.User == nil {
		return ""
	}
	return p.User.Role
}
