package main

import (
	"flag"
	"io"
	"os"

	"Santa/config"
	pgconfig "Santa/config/postgres"
	_ "Santa/config/swagger"
	"Santa/middleware"
	"Santa/routes"
	"Santa/services/access"
	"Santa/services/auth"
	"Santa/services/draw"
	"Santa/services/events"
	"Santa/services/mail"
	"Santa/services/notify"
	"Santa/services/redis"
	"Santa/services/storage"
	"Santa/services/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/joho/godotenv"
)

// @title Santa Family API
// @version 1.0
// @description Gin-Gonic server for the Santa Family gift exchange
// @host santa-family.fr
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	flag.Parse()
	godotenv.Load()
	cfg := config.Load()

	var logFile io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Fatalf("Error opening log file: %v", err)
		}
		defer f.Close()
		logFile = f
	}
	defer logger.Init("santa", true, false, logFile).Close()
	logger.Info("Setting up server...")

	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}
	if cfg.Server.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := pgconfig.ConnectGORM(cfg.Postgres)
	if err != nil {
		logger.Fatalf("Error connecting to PostgreSQL: %v", err)
	}

	// Only migrate in development or during deployment
	if cfg.Postgres.Migrate {
		logger.Info("Migrating PostgreSQL database...")
		if err := pgconfig.MigrateDatabase(gormDB); err != nil {
			logger.Warningf("Database migration failed: %v", err)
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := config.Connect_redis(cfg.Redis)
	if err != nil {
		logger.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redis.CloseRedis(redisClient)

	store := storage.NewStore(gormDB)

	var mailer mail.Mailer = mail.LogMailer{}
	if cfg.Mail.MailjetEnabled() {
		mailer = mail.NewMailjetMailer(cfg.Mail.PublicKey, cfg.Mail.PrivateKey, cfg.Mail.TemplateID, cfg.Mail.SenderName, cfg.Mail.Timeout)
	} else {
		logger.Warning("Mailjet keys not set, draw results are only logged")
	}

	var locker draw.Locker
	if redisClient != nil {
		locker = redisClient
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	authService := auth.NewService(store, tokens)
	resolver := access.NewResolver(store, store)
	notifier := notify.NewNotifier(store, mailer, store, cfg.Mail.Sender, cfg.Mail.ProxyBaseURL)
	drawService := draw.NewService(store, resolver, notifier, locker)

	r := gin.New()
	r.Use(gin.Recovery())

	middleware.SetUpMiddleware(r, cfg.CORS.AllowOrigins)

	routes.SetupRoutes(r, routes.Dependencies{
		Tokens:   tokens,
		Events:   store,
		Auth:     authService,
		Event:    events.NewService(store, authService),
		Access:   resolver,
		Draw:     drawService,
		Wishlist: wishlist.NewService(store, drawService),
	})

	addr := ":" + cfg.Server.Port
	logger.Infof("Server starting on %s", addr)
	if cfg.Server.UseHTTPS {
		err = r.RunTLS(addr, cfg.Server.CertFile, cfg.Server.KeyFile)
	} else {
		err = r.Run(addr)
	}
	if err != nil {
		logger.Fatalf("Error starting server: %v", err)
	}
}
