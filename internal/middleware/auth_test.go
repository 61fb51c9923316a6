package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MischieS/agenta-sub001/internal/auth"
	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuthService resolves tokens with a real TokenManager but a fixed
// principal table, so guard tests exercise genuine verification.
type stubAuthService struct {
	tokens     *auth.TokenManager
	principals map[string]*domain.Principal
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{
		tokens:     auth.NewTokenManager("guard-test-secret", "agenta", time.Hour),
		principals: make(map[string]*domain.Principal),
	}
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	panic("not used")
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	p, ok := s.principals[claims.Subject]
	if !ok {
		return nil, auth.ErrTokenMalformed
	}
	return p, nil
}

func (s *stubAuthService) UpdateUserProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) UpdateStudentProfile(ctx context.Context, studentID string, req *dto.UpdateStudentSelfRequest) (*domain.Student, error) {
	panic("not used")
}

func guardedRouter(svc *stubAuthService, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAuth(svc)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		p := PrincipalFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": p.ID()})
	})
	router.GET("/guarded", handlers...)
	return router
}

func TestRequireAuth(t *testing.T) {
	svc := newStubAuthService()
	svc.principals["u-1"] = domain.StaffPrincipal(&domain.User{
		ID: "u-1", Email: "advisor@agenta.io", Role: domain.RoleStaff,
	})
	router := guardedRouter(svc)

	validToken, err := svc.tokens.Issue("u-1", "advisor@agenta.io", false)
	require.NoError(t, err)

	otherSecret := auth.NewTokenManager("different-secret", "agenta", time.Hour)
	forgedToken, err := otherSecret.Issue("u-1", "advisor@agenta.io", false)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", validToken, http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"forged signature", "Bearer " + forgedToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				// Every rejection looks the same on the wire
				assert.JSONEq(t,
					`{"success":false,"error":{"code":"UNAUTHORIZED","message":"Authentication required"}}`,
					w.Body.String(),
				)
			}
		})
	}
}

func TestPrincipalFromContext_Unguarded(t *testing.T) {
	router := gin.New()
	router.GET("/open", func(c *gin.Context) {
		assert.Nil(t, PrincipalFromContext(c))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
