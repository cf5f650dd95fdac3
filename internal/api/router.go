package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts every route. All /api routes sit behind the bearer-token
// middleware.
func NewRouter(h *Handler, verifier TokenVerifier, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "expiry checker api"})
	})

	api := r.Group("/api")
	api.Use(AuthMiddleware(verifier))

	foods := api.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.POST("", h.CreateFood)
		foods.POST("/recipes", h.GetRecipes)
		foods.GET("/:id", h.GetFood)
		foods.PUT("/:id", h.UpdateFood)
		foods.DELETE("/:id", h.DeleteFood)
	}

	api.POST("/image/ocr", h.OCRImage)

	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.GetNotificationSettings)
		notifications.PUT("", h.UpdateNotificationSettings)
		notifications.POST("/send", h.SendNotification)
	}

	api.GET("/user/:id", h.GetUserProfile)

	return r
}
