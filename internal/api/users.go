package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userProfile is the claims-derived profile. It is never persisted.
type userProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// GetUserProfile returns the caller's profile. Requests for any other
// user's id are forbidden.
func (h *Handler) GetUserProfile(c *gin.Context) {
	claims := claimsFrom(c)

	if c.Param("id") != claims.Subject {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	c.JSON(http.StatusOK, userProfile{
		ID:        claims.Subject,
		Email:     claims.Email,
		Name:      claims.FullName,
		AvatarURL: claims.AvatarURL,
	})
}
