package chat

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"SantaChat/controllers"
	"SantaChat/middleware"
	svc "SantaChat/pkg/services"
)

// Register registers chat routes (protected)
func Register(g *gin.RouterGroup, db *gorm.DB, gen svc.Generator) {
	// rate limit on the turn endpoint only; reads are cheap
	g.POST("/api/chat", middleware.RateLimit(), controllers.PostChat(db, gen))
	g.GET("/api/chats", controllers.ListChats(db))
}
