package main

import (
  "context"
  "fmt"
  "os"
  "time"

  rediscache "github.com/feiracoletiva/feira-backend/internal/clients/redis"
  "github.com/feiracoletiva/feira-backend/internal/db"
  "github.com/feiracoletiva/feira-backend/internal/handlers"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/middleware"
  "github.com/feiracoletiva/feira-backend/internal/observability"
  "github.com/feiracoletiva/feira-backend/internal/repos"
  "github.com/feiracoletiva/feira-backend/internal/server"
  "github.com/feiracoletiva/feira-backend/internal/services"
  "github.com/feiracoletiva/feira-backend/internal/utils"
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

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)

  // Tracing
  otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "feira-backend",
    Environment: utils.GetEnv("APP_ENV", "development", log),
  })
  defer func() {
    if otelShutdown == nil {
      return
    }
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := otelShutdown(ctx); err != nil {
      log.Warn("OTel shutdown failed", "error", err)
    }
  }()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  categoryRepo := repos.NewCategoryRepo(thePG, log)
  clientRepo := repos.NewClientRepo(thePG, log)
  sellerRepo := repos.NewSellerRepo(thePG, log)
  pickupRepo := repos.NewPickupLocationRepo(thePG, log)
  offerRepo := repos.NewOfferRepo(thePG, log)
  productRepo := repos.NewProductRepo(thePG, log)
  publicationRepo := repos.NewPublicationRepo(thePG, log)
  participantRepo := repos.NewParticipantRepo(thePG, log)

  // Redis
  publicationCache, err := rediscache.NewPublicationCache(log)
  if err != nil {
    log.Warn("Redis init failed, publication caching disabled", "error", err)
    publicationCache = nil
  }

  // Services
  log.Info("Setting up Services from main...")
  authService := services.NewAuthService(thePG, log, clientRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
  categoryService := services.NewCategoryService(thePG, log, categoryRepo)
  clientService := services.NewClientService(thePG, log, clientRepo)
  sellerService := services.NewSellerService(thePG, log, sellerRepo)
  pickupService := services.NewPickupLocationService(thePG, log, pickupRepo)
  offerService := services.NewOfferService(thePG, log, offerRepo, productRepo, sellerRepo, categoryRepo)
  publicationService := services.NewPublicationService(thePG, log, publicationRepo, offerRepo, pickupRepo, participantRepo, publicationCache)
  participationService := services.NewParticipationService(thePG, log, clientRepo, publicationRepo, participantRepo, publicationCache)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(log, authService)
  categoryHandler := handlers.NewCategoryHandler(log, categoryService)
  clientHandler := handlers.NewClientHandler(log, clientService)
  sellerHandler := handlers.NewSellerHandler(log, sellerService)
  pickupHandler := handlers.NewPickupLocationHandler(log, pickupService)
  offerHandler := handlers.NewOfferHandler(log, offerService)
  publicationHandler := handlers.NewPublicationHandler(log, publicationService)
  participationHandler := handlers.NewParticipationHandler(log, participationService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:           authHandler,
    AuthMiddleware:        authMiddleware,
    CategoryHandler:       categoryHandler,
    ClientHandler:         clientHandler,
    SellerHandler:         sellerHandler,
    PickupLocationHandler: pickupHandler,
    OfferHandler:          offerHandler,
    PublicationHandler:    publicationHandler,
    ParticipationHandler:  participationHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
