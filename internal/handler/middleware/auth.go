package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"ticket-booking/internal/handler/httperr"
	"ticket-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AdminAuth struct {
	tokens TokenValidator
}

const ctxAdminClaimsKey = "jwt_claims"

func NewAdminAuth(tokens TokenValidator) *AdminAuth {
	return &AdminAuth{tokens: tokens}
}

// RequireAdmin admits only bearer tokens signed with the configured secret
// whose role claim is admin.
func (m *AdminAuth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Access token required", nil)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in admin middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		if !claims.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, jwt.ErrInvalidToken, "Insufficient permissions", nil)
			return
		}

		c.Set(ctxAdminClaimsKey, claims)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetAdminClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ctxAdminClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
