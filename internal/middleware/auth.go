package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/service"
	"github.com/MischieS/agenta-sub001/pkg/logger"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

const principalKey = "principal"

// RequireAuth is the bearer-token guard. It extracts the token,
// delegates verification and principal resolution to the auth service,
// and attaches the resolved principal to the request context. Every
// failure kind collapses into one 401 so the response never reveals
// which check failed; the log keeps the distinction.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	log := logger.Get()

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			log.Debug("malformed authorization header", zap.String("path", c.Request.URL.Path))
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		principal, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Info("request rejected by auth guard",
				zap.String("path", c.Request.URL.Path),
				zap.String("reason", err.Error()),
			)
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the principal the guard attached, or
// nil when the route is not guarded
func PrincipalFromContext(c *gin.Context) *domain.Principal {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	principal, ok := v.(*domain.Principal)
	if !ok {
		return nil
	}
	return principal
}
