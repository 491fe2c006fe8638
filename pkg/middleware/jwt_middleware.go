package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"

	mem "clubcentral/pkg/memcache"
	"clubcentral/pkg/utils"
)

func JWTAuthMiddleware(revoked mem.RevokedTokenStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if revoked != nil && revoked.IsRevoked(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Session has been signed out")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("session_token", tokenString)
		c.Set("uid", claims.UID)
		c.Set("email", claims.Email)
		c.Set("Role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// RoleMiddleware lets the request through when the session's role is
// any of the allowed ones; guests carry a valid token but no role that
// grants access.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString("Role")

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}
