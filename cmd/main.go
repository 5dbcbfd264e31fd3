package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yungbote/contactbook-backend/internal/db"
	"github.com/yungbote/contactbook-backend/internal/handlers"
	"github.com/yungbote/contactbook-backend/internal/logger"
	"github.com/yungbote/contactbook-backend/internal/middleware"
	"github.com/yungbote/contactbook-backend/internal/observability"
	"github.com/yungbote/contactbook-backend/internal/repos"
	"github.com/yungbote/contactbook-backend/internal/server"
	"github.com/yungbote/contactbook-backend/internal/services"
	"github.com/yungbote/contactbook-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "contactbook-backend",
		Environment: utils.GetEnv("APP_ENV", "development", log),
	})
	defer func() { _ = otelShutdown(context.Background()) }()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	contactRepo := repos.NewContactRepo(thePG, log)
	addressRepo := repos.NewAddressRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	userService := services.NewUserService(thePG, log, userRepo)
	contactService := services.NewContactService(thePG, log, contactRepo, addressRepo)
	addressService := services.NewAddressService(thePG, log, addressRepo, contactService)

	// Handlers
	log.Info("Setting up handlers from main...")
	userHandler := handlers.NewUserHandler(userService)
	contactHandler := handlers.NewContactHandler(contactService)
	addressHandler := handlers.NewAddressHandler(addressService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, userService)

	// Router
	log.Info("Setting up router from main...")
	var allowOrigins []string
	if raw := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log); raw != "" {
		allowOrigins = strings.Split(raw, ",")
	}
	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		AuthMiddleware: authMiddleware,
		UserHandler:    userHandler,
		ContactHandler: contactHandler,
		AddressHandler: addressHandler,
		AllowOrigins:   allowOrigins,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
