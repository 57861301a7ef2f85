package v1

import (
	"net/http"
	"strings"

	"github.com/disasterconnect/disaster_coordination_system/internal/config"
	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// JWTAuthMiddleware - middleware для аутентификации по JWT из заголовка Authorization
func JWTAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Authorization token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := service.ParseToken(tokenString, cfg.JWTSecret)
		if err != nil {
			log.WithError(err).Warn("Invalid authorization token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// Имя пользователя из claims используется как created_by при создании записей
		if username, ok := claims["username"].(string); ok {
			c.Set("username", username)
		}
		if userID, ok := claims["user_id"].(string); ok {
			c.Set("user_id", userID)
		}

		c.Next()
	}
}
