package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

func issueFor(t *testing.T, svc *stubAuthService, p *domain.Principal) string {
	t.Helper()
	svc.principals[p.ID()] = p
	token, err := svc.tokens.Issue(p.ID(), p.Email(), p.IsStudent)
	require.NoError(t, err)
	return token
}

func TestRequireStaff(t *testing.T) {
	svc := newStubAuthService()

	adminToken := issueFor(t, svc, domain.StaffPrincipal(&domain.User{
		ID: "admin-1", Email: "boss@agenta.io", Role: domain.RoleAdmin,
	}))
	staffToken := issueFor(t, svc, domain.StaffPrincipal(&domain.User{
		ID: "staff-1", Email: "advisor@agenta.io", Role: domain.RoleStaff,
	}))
	plainToken := issueFor(t, svc, domain.StaffPrincipal(&domain.User{
		ID: "user-1", Email: "viewer@agenta.io", Role: domain.RoleUser,
	}))
	unknownRoleToken := issueFor(t, svc, domain.StaffPrincipal(&domain.User{
		ID: "odd-1", Email: "odd@agenta.io", Role: domain.Role("superuser"),
	}))
	studentToken := issueFor(t, svc, domain.StudentPrincipal(&domain.Student{
		ID: "s-1", Email: "ada@agenta.io",
	}))

	router := guardedRouter(svc, RequireStaff(domain.RoleAdmin, domain.RoleStaff))

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"admin passes", adminToken, http.StatusOK},
		{"staff passes", staffToken, http.StatusOK},
		{"plain user denied", plainToken, http.StatusForbidden},
		{"unknown role denied", unknownRoleToken, http.StatusForbidden},
		{"student denied", studentToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	svc := newStubAuthService()
	staffToken := issueFor(t, svc, domain.StaffPrincipal(&domain.User{
		ID: "staff-1", Email: "advisor@agenta.io", Role: domain.RoleStaff,
	}))
	adminToken := issueFor(t, svc, domain.StaffPrincipal(&domain.User{
		ID: "admin-1", Email: "boss@agenta.io", Role: domain.RoleAdmin,
	}))

	router := guardedRouter(svc, RequireAdmin())

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireStudent(t *testing.T) {
	svc := newStubAuthService()
	studentToken := issueFor(t, svc, domain.StudentPrincipal(&domain.Student{
		ID: "s-1", Email: "ada@agenta.io",
	}))
	staffToken := issueFor(t, svc, domain.StaffPrincipal(&domain.User{
		ID: "staff-1", Email: "advisor@agenta.io", Role: domain.RoleStaff,
	}))

	router := guardedRouter(svc, RequireStudent())

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
