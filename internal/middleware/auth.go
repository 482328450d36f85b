package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minesight/rockfall-backend-go/internal/auth"
	"github.com/minesight/rockfall-backend-go/pkg/response"
)

const claimsContextKey = "auth_claims"

// Auth middleware validates the Bearer access token and stores its claims
// in the request context
func Auth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(header[len(prefix):], auth.TokenTypeAccess)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated user has the role.
// Must run after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		if claims.Role != role {
			response.Forbidden(c, "Only "+strings.ToLower(role)+"s can perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the verified claims from the request context
func GetClaims(c *gin.Context) *auth.Claims {
	value, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
