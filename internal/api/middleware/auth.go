package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/internal/repository"
)

const clientCtxKey = "api_client"

// AuthMiddleware authenticates admin requests using a bearer API key.
func AuthMiddleware(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		apiKey := strings.TrimPrefix(authHeader, "Bearer ")
		if apiKey == authHeader || apiKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			c.Abort()
			return
		}

		client, err := repos.APIClient.GetByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			logger.Warn("API key authentication failed", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		c.Set(clientCtxKey, client)
		c.Next()
	}
}

// GetClientFromContext retrieves the authenticated API client.
func GetClientFromContext(c *gin.Context) (*domain.APIClient, bool) {
	value, ok := c.Get(clientCtxKey)
	if !ok {
		return nil, false
	}
	client, ok := value.(*domain.APIClient)
	return client, ok
}
