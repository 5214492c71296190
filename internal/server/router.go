package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

  "github.com/feiracoletiva/feira-backend/internal/handlers"
  "github.com/feiracoletiva/feira-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler           *handlers.AuthHandler
  AuthMiddleware        *middleware.AuthMiddleware
  CategoryHandler       *handlers.CategoryHandler
  ClientHandler         *handlers.ClientHandler
  SellerHandler         *handlers.SellerHandler
  PickupLocationHandler *handlers.PickupLocationHandler
  OfferHandler          *handlers.OfferHandler
  PublicationHandler    *handlers.PublicationHandler
  ParticipationHandler  *handlers.ParticipationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()
  router.Use(otelgin.Middleware("feira-backend"))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.Healthcheck)
  api := router.Group("/api")
  {
    api.POST("/register", cfg.AuthHandler.Register)
    api.POST("/login", cfg.AuthHandler.Login)
  }

// ===============
// || Protected ||
// ===============
  protected := router.Group("/api")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Categories
  protected.POST("/categories", cfg.CategoryHandler.Create)
  protected.GET("/categories", cfg.CategoryHandler.List)
  protected.GET("/categories/:id", cfg.CategoryHandler.GetByID)
  protected.PUT("/categories/:id", cfg.CategoryHandler.Rename)
  protected.DELETE("/categories/:id", cfg.CategoryHandler.Delete)
  // Clients
  protected.GET("/clients", cfg.ClientHandler.List)
  protected.GET("/clients/:id", cfg.ClientHandler.GetByID)
  protected.PUT("/clients/:id", cfg.ClientHandler.Update)
  protected.DELETE("/clients/:id", cfg.ClientHandler.Delete)
  // Sellers
  protected.POST("/sellers", cfg.SellerHandler.Register)
  protected.GET("/sellers", cfg.SellerHandler.List)
  protected.GET("/sellers/:id", cfg.SellerHandler.GetByID)
  protected.GET("/sellers/:id/offers", cfg.SellerHandler.GetWithOffers)
  protected.DELETE("/sellers/:id", cfg.SellerHandler.Delete)
  // Pickup locations
  protected.POST("/pickup-locations", cfg.PickupLocationHandler.Create)
  protected.GET("/pickup-locations", cfg.PickupLocationHandler.List)
  protected.GET("/pickup-locations/:id", cfg.PickupLocationHandler.GetByID)
  protected.PUT("/pickup-locations/:id", cfg.PickupLocationHandler.Update)
  protected.DELETE("/pickup-locations/:id", cfg.PickupLocationHandler.Delete)
  // Offers
  protected.POST("/offers", cfg.OfferHandler.Create)
  protected.GET("/offers", cfg.OfferHandler.List)
  protected.GET("/offers/:id", cfg.OfferHandler.GetByID)
  protected.POST("/offers/:id/products", cfg.OfferHandler.AddProduct)
  protected.DELETE("/offers/:id/products/:productId", cfg.OfferHandler.RemoveProduct)
  protected.DELETE("/offers/:id", cfg.OfferHandler.Delete)
  // Publications
  protected.POST("/publications", cfg.PublicationHandler.Create)
  protected.GET("/publications", cfg.PublicationHandler.List)
  protected.GET("/publications/:id", cfg.PublicationHandler.GetByID)
  protected.GET("/publications/:id/detail", cfg.PublicationHandler.GetDetail)
  protected.DELETE("/publications/:id", cfg.PublicationHandler.Delete)
  // Participations
  protected.POST("/publications/:id/participations", cfg.ParticipationHandler.Create)
  protected.GET("/participations", cfg.ParticipationHandler.List)
  protected.GET("/participations/:id", cfg.ParticipationHandler.GetByID)
  protected.GET("/my/participations", cfg.ParticipationHandler.ListMine)

  return router
}
