package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/response"
	"stayhub/internal/policy"

	jwtsvc "stayhub/internal/pkg/jwt"
)

// Principal rebuilds the authenticated principal JWTAuth stored in the
// request context.
func Principal(c *gin.Context) policy.Principal {
	return policy.Principal{
		ID:   c.GetInt64("user_id"),
		Role: domain.Role(c.GetString("role")),
	}
}

// JWTAuth resolves the bearer credential into a principal and stores
// user_id and role in the request context. Requests without a valid token
// never reach the handlers behind it.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "No token, authorization denied")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
