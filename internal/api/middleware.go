package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"expirychecker/internal/auth"
)

const claimsKey = "claims"

// AuthMiddleware verifies the Authorization bearer token once per request
// and stores the resulting claims in the request context. Each verification
// failure keeps its own message so callers can tell the cases apart.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// claimsFrom returns the verified claims set by AuthMiddleware.
func claimsFrom(c *gin.Context) *auth.Claims {
	return c.MustGet(claimsKey).(*auth.Claims)
}
