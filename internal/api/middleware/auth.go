package middleware

import (
	"context"
	"net/http"
	"strings"

	"Quill/internal/pkg/response"
	"Quill/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "missing or malformed token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "token is invalid or expired")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
