package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"SantaChat/middleware"
	"SantaChat/models"
)

// AddWishlistItem creates one wishlist row for the caller. Items are
// append-only; there is no update or delete path.
func AddWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CurrentUserID(c)

		var body struct {
			Item     string `json:"item"`
			Category string `json:"category"`
			Priority *int   `json:"priority"`
			Notes    string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}
		if body.Item == "" || body.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "item and category are required"})
			return
		}
		if !models.ValidCategory(body.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "unknown category"})
			return
		}

		priority := 1
		if body.Priority != nil && *body.Priority > 0 {
			priority = *body.Priority
		}

		item := models.WishlistItem{
			UserID:   uid,
			Item:     body.Item,
			Category: body.Category,
			Priority: priority,
			Notes:    body.Notes,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to save wishlist item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// ListWishlist returns the caller's items ordered by priority.
func ListWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CurrentUserID(c)

		items := make([]models.WishlistItem, 0)
		if err := db.Where("user_id = ?", uid).Order("priority asc, id asc").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "db error"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}
