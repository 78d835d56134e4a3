package server

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yrwanda/practicelog/internal/config"
	"github.com/yrwanda/practicelog/internal/handler"
	"github.com/yrwanda/practicelog/internal/middleware"
	"github.com/yrwanda/practicelog/internal/repository"
	"github.com/yrwanda/practicelog/internal/service"
	"github.com/yrwanda/practicelog/internal/token"
)

type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *zap.SugaredLogger) *Server {
	tokens := token.NewService(cfg.JWTSecret)

	userRepo := repository.NewUserRepository(db)
	actionRepo := repository.NewActionRepository(db)

	authSvc := service.NewAuthService(userRepo, tokens, log)
	authHandler := handler.NewAuthHandler(authSvc)

	actionSvc := service.NewActionService(actionRepo, redisClient, cfg.FinishRateLimit, log)
	actionHandler := handler.NewActionHandler(actionSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	api := router.Group("/api")

	// Public routes (no auth required)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/actions", actionHandler.Create)
		protected.GET("/actions", actionHandler.List)
		protected.GET("/actions/:id", actionHandler.Get)
		protected.GET("/actions/:id/records", actionHandler.Records)
		protected.POST("/actions/:id/finish", actionHandler.Finish)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return &Server{engine: router, cfg: cfg}
}

func (s *Server) Run() error {
	return s.engine.Run(":" + s.cfg.Port)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	if allowedOrigins == "*" || allowedOrigins == "" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(corsConfig))
}
