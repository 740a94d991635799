package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"SantaChat/middleware"
	svc "SantaChat/pkg/services"
	"SantaChat/pkg/voice"

	authRoutes "SantaChat/routes/auth"
	chatRoutes "SantaChat/routes/chat"
	childrenRoutes "SantaChat/routes/children"
	speechRoutes "SantaChat/routes/speech"
	wishlistRoutes "SantaChat/routes/wishlist"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, gen svc.Generator) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "Santa chat backend running"})
	})

	authRoutes.RegisterPublic(r, db)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	authRoutes.RegisterProtected(protected, db)
	chatRoutes.Register(protected, db, gen)
	wishlistRoutes.Register(protected, db)
	childrenRoutes.Register(protected, db)
	speechRoutes.Register(protected, voice.NoopInput{})
}
