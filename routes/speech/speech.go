package speech

import (
	"github.com/gin-gonic/gin"

	"SantaChat/controllers"
	"SantaChat/pkg/voice"
)

// Register registers the speech capability route (protected)
func Register(g *gin.RouterGroup, in voice.Input) {
	g.POST("/api/speech", controllers.Transcribe(in))
}
