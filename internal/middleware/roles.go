package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

// RequireStaff passes staff principals with one of the allowed roles.
// Student principals never pass: they carry no role at all. The switch
// over the role enum is exhaustive on purpose; an unknown role value
// is a deny, not a fall-through.
func RequireStaff(allowed ...domain.Role) gin.HandlerFunc {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		if principal.IsStudent {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Staff access required")
			return
		}

		role := principal.Role()
		switch role {
		case domain.RoleAdmin, domain.RoleStaff, domain.RoleUser:
			if _, ok := allowedSet[role]; ok {
				c.Next()
				return
			}
		}
		response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Insufficient role")
	}
}

// RequireAdmin restricts a route to admin accounts
func RequireAdmin() gin.HandlerFunc {
	return RequireStaff(domain.RoleAdmin)
}

// RequireStudent restricts a route to student principals
func RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		if !principal.IsStudent {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Student access required")
			return
		}
		c.Next()
	}
}
