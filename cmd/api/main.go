package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/config"
	"github.com/antera/antera-backend/internal/handler"
	"github.com/antera/antera-backend/internal/middleware"
	"github.com/antera/antera-backend/internal/migration"
	"github.com/antera/antera-backend/internal/repository"
	"github.com/antera/antera-backend/internal/routes"
	"github.com/antera/antera-backend/internal/service"
	"github.com/antera/antera-backend/internal/ws"
	pkgcache "github.com/antera/antera-backend/pkg/cache"
	"github.com/antera/antera-backend/pkg/jwt"
	pkglogger "github.com/antera/antera-backend/pkg/logger"
	pkgredis "github.com/antera/antera-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Antera Backend API
// @version         1.0
// @description     Professional network backend API
//
// @license.name    MIT
//
// @host            localhost:3000
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"
func main() {
	dotenvFiles := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pkglogger.InitStructured(cfg.Server.Env)
	logger := pkglogger.GetLogger()
	logger.Info().
		Str("env", cfg.Server.Env).
		Strs("env_files", dotenvFiles).
		Msg("starting antera-backend")

	common.SetDevMode(cfg.IsDevelopment())

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info().Msg("connected to MySQL")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional: without it the server runs with caching,
	// rate limiting and cross-instance fan-out disabled
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, continuing without it")
		redisClient = nil
	} else {
		logger.Info().Msg("connected to Redis")
	}

	cacheService := pkgcache.NewService(redisClient)

	// WebSocket Hub
	wsHub := ws.NewHub(redisClient)
	go wsHub.Run()
	defer wsHub.Stop()

	// JWT Manager
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	connRepo := repository.NewConnectionRepository(db)
	convRepo := repository.NewConversationRepository(db)
	postRepo := repository.NewPostRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	connService := service.NewConnectionService(connRepo, userRepo)
	messageService := service.NewMessageService(convRepo, userRepo, cacheService, wsHub)
	profileService := service.NewProfileService(profileRepo, userRepo, connRepo, postRepo, companyRepo)
	postService := service.NewPostService(postRepo, userRepo)
	companyService := service.NewCompanyService(companyRepo)
	jobService := service.NewJobService(jobRepo, userRepo, companyRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	connHandler := handler.NewConnectionHandler(connService)
	messageHandler := handler.NewMessageHandler(messageService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	wsHandler := handler.NewWSHandler(wsHub, cfg.CORS.AllowOrigins)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	corsConfig := cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORS.AllowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           86400,
	}
	if cfg.CORS.AllowOrigins == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	// Middleware
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())
	if redisClient != nil && !cfg.IsDevelopment() {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "antera-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(
		router,
		authHandler,
		profileHandler,
		connHandler,
		messageHandler,
		postHandler,
		jobHandler,
		companyHandler,
		wsHandler,
		jwtManager,
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	}
	if cfg.IsDevelopment() {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
