package children

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"SantaChat/controllers"
)

// Register registers the parent dashboard route (protected)
func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.GET("/api/children", controllers.ListChildren(db))
}
