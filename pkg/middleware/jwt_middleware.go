package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripcraft/pkg/utils"
)

// JWTAuthMiddleware rejects requests without a valid bearer token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("tier", claims.Tier)
		c.Next()
	}
}

// OptionalJWTMiddleware lets anonymous callers through. A valid bearer token
// attaches the account identity; an invalid one is ignored rather than
// rejected, so expired tokens degrade to anonymous access.
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil {
				c.Set("account_id", claims.AccountID)
				c.Set("tier", claims.Tier)
			}
		}
		c.Next()
	}
}
