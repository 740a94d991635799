package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"SantaChat/middleware"
	"SantaChat/models"
	"SantaChat/pkg/config"
	svc "SantaChat/pkg/services"
	tokenstore "SantaChat/pkg/token"
	"SantaChat/routes"
)

func main() {
	// config loads via package init()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// postgres in deployment; sqlite file for local runs
	var dial gorm.Dialector
	if config.DatabaseURL != "" {
		dial = postgres.Open(config.DatabaseURL)
	} else {
		dial = sqlite.Open("santa.db")
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.User{}, &models.ChatMessage{}, &models.WishlistItem{}); err != nil {
		logger.Fatal("failed migrate", zap.Error(err))
	}

	// shared revocation store when running more than one instance
	if config.RedisAddr != "" {
		tokenstore.Use(tokenstore.NewRedisStore(config.RedisAddr))
	}

	middleware.SetRateLimitConfig(
		time.Duration(config.RateLimitWindowSeconds)*time.Second,
		config.RateLimitCapacity,
		config.UserConcurrencyLimit,
	)
	middleware.SetDuplicateTTL(time.Duration(config.DuplicateWindowSeconds) * time.Second)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	gen := svc.NewGenerator()
	routes.RegisterRoutes(r, db, gen)

	if err := r.Run(":" + config.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
