package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"SantaChat/middleware"
	"SantaChat/models"
)

// ListChildren is the parent dashboard query: every user whose parent link
// points at the caller, with full transcript and wishlist embedded. Read-only.
func ListChildren(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CurrentUserID(c)

		var caller models.User
		if err := db.First(&caller, uid).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "not authenticated"})
			return
		}
		if !caller.IsParent {
			c.JSON(http.StatusForbidden, gin.H{"msg": "only parents can access this endpoint"})
			return
		}

		children := make([]models.User, 0)
		err := db.
			Preload("Chats", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("created_at asc, id asc")
			}).
			Preload("WishlistItems", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("priority asc, id asc")
			}).
			Where("parent_id = ?", uid).
			Order("id asc").
			Find(&children).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "db error"})
			return
		}

		// children without rows still serialize with empty arrays, not null
		for i := range children {
			if children[i].Chats == nil {
				children[i].Chats = []models.ChatMessage{}
			}
			if children[i].WishlistItems == nil {
				children[i].WishlistItems = []models.WishlistItem{}
			}
		}

		c.JSON(http.StatusOK, children)
	}
}
