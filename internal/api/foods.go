package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expirychecker/internal/extract"
	"expirychecker/internal/food"
)

// foodRequest is the create/update payload for a food item.
type foodRequest struct {
	Name           string `json:"name" binding:"required"`
	ExpirationDate string `json:"expiration_date" binding:"required"`
	Category       string `json:"category" binding:"required"`
	ImageURL       string `json:"image_url"`
}

func (r *foodRequest) validate() error {
	if _, err := time.Parse("2006-01-02", r.ExpirationDate); err != nil {
		return fmt.Errorf("expiration_date must be YYYY-MM-DD: %w", err)
	}
	return nil
}

// ListFoods returns every food item owned by the caller.
func (h *Handler) ListFoods(c *gin.Context) {
	claims := claimsFrom(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	foods, err := h.Foods.List(ctx, claims.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// CreateFood inserts a food item owned by the caller.
func (h *Handler) CreateFood(c *gin.Context) {
	claims := claimsFrom(c)

	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	f := food.Food{
		UserID:         claims.Subject,
		Name:           req.Name,
		Category:       req.Category,
		ExpirationDate: req.ExpirationDate,
		ImageURL:       req.ImageURL,
	}
	if err := h.Foods.Create(ctx, &f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

// GetFood returns one food item; items owned by someone else read as
// missing.
func (h *Handler) GetFood(c *gin.Context) {
	claims := claimsFrom(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	f, err := h.Foods.Get(ctx, claims.Subject, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	c.JSON(http.StatusOK, f)
}

// UpdateFood rewrites an owned food item.
func (h *Handler) UpdateFood(c *gin.Context) {
	claims := claimsFrom(c)

	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.Foods.Update(ctx, &food.Food{
		ID:             c.Param("id"),
		UserID:         claims.Subject,
		Name:           req.Name,
		Category:       req.Category,
		ExpirationDate: req.ExpirationDate,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteFood removes an owned food item and returns the deleted record.
func (h *Handler) DeleteFood(c *gin.Context) {
	claims := claimsFrom(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.Foods.Delete(ctx, claims.Subject, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deleted == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// recipeRequest is the ingredients-to-recipe payload. Cooking time and
// difficulty are optional hints; they also serve as fallbacks when the
// model's answer omits those fields.
type recipeRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
	CookingTime string   `json:"cooking_time"`
	Difficulty  string   `json:"difficulty"`
}

// GetRecipes asks the generative model for a recipe built from the given
// ingredients and returns a singleton recipe list.
func (h *Handler) GetRecipes(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if req.CookingTime == "" {
		req.CookingTime = "medium"
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 45*time.Second)
	defer cancel()

	text, err := h.Gemini.RecipeText(ctx, req.Ingredients, req.CookingTime, req.Difficulty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("recipe text received (%d bytes)", len(text))

	recipe := extract.ParseRecipe(text, req.CookingTime, req.Difficulty)
	c.JSON(http.StatusOK, gin.H{"recipes": []extract.Recipe{recipe}})
}
