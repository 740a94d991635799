package wishlist

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"SantaChat/controllers"
)

// Register registers wishlist routes (protected)
func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.POST("/api/wishlist", controllers.AddWishlistItem(db))
	g.GET("/api/wishlist", controllers.ListWishlist(db))
}
