package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expirychecker/internal/notification"
)

// GetNotificationSettings returns the caller's settings, falling back to
// defaults when nothing has been stored. The default is not persisted.
func (h *Handler) GetNotificationSettings(c *gin.Context) {
	claims := claimsFrom(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	settings, err := h.Settings.Get(ctx, claims.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if settings == nil {
		defaults := notification.Default(claims.Subject)
		c.JSON(http.StatusOK, defaults)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateNotificationSettings applies a partial update on top of the current
// (or default) settings and persists the result.
func (h *Handler) UpdateNotificationSettings(c *gin.Context) {
	claims := claimsFrom(c)

	var update notification.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	current, err := h.Settings.Get(ctx, claims.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	base := notification.Default(claims.Subject)
	if current != nil {
		base = *current
	}

	saved, err := h.Settings.Upsert(ctx, base.Apply(update))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SendNotification triggers an expiry notification for a food item. Actual
// delivery is not implemented; the endpoint acknowledges the request so the
// frontend flow can be exercised end to end.
func (h *Handler) SendNotification(c *gin.Context) {
	claims := claimsFrom(c)
	foodID := c.Query("food_id")

	log.Printf("notification requested: user=%s food=%s", claims.Subject, foodID)
	c.JSON(http.StatusOK, gin.H{"message": "notification sent", "status": "success"})
}
