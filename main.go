package main

import (
	"context"
	"log"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/trendora/storefront-api/apiclient"
	"github.com/trendora/storefront-api/cart"
	"github.com/trendora/storefront-api/checkout"
	"github.com/trendora/storefront-api/config"
	streamControllers "github.com/trendora/storefront-api/controllers/stream"
	"github.com/trendora/storefront-api/identity"
	"github.com/trendora/storefront-api/localstore"
	"github.com/trendora/storefront-api/middleware"
	"github.com/trendora/storefront-api/routes"
	"github.com/trendora/storefront-api/session"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	initLogger(cfg.LogFormat)
	defer func() { _ = zap.L().Sync() }()

	// Durable client storage (cart / session / admin snapshots)
	local, err := localstore.Open(cfg.DataDir)
	if err != nil {
		zap.L().Fatal("failed to open snapshot store", zap.Error(err))
	}
	defer local.Close()

	// Remote catalog API and identity provider
	api := apiclient.New(cfg.APIURL)
	provider := identity.NewClient(cfg.FirebaseAPIKey, cfg.IdentityToolkitURL, cfg.SecureTokenURL)

	var verifier *identity.Verifier
	if cfg.FirebaseProjectID != "" && cfg.FirebaseCredentialsJSON != "" {
		verifier, err = identity.NewVerifier(context.Background(), cfg.FirebaseProjectID, cfg.FirebaseCredentialsJSON)
		if err != nil {
			zap.L().Fatal("failed to init firebase verifier", zap.Error(err))
		}
	} else {
		zap.L().Warn("firebase credentials not configured, session token verification disabled")
	}

	// Stores, constructed once and injected everywhere
	bus := EventBus.New()
	sessions := session.New(provider, api, local, bus)
	defer sessions.Close()
	admins := session.NewAdmin(local)
	cartStore := cart.New(sessions, local, bus)
	builder := checkout.NewBuilder(cfg.WhatsAppNumber)

	hub, err := streamControllers.NewHub(bus)
	if err != nil {
		zap.L().Fatal("failed to wire update stream", zap.Error(err))
	}

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20 // 32MB, plenty for 3 product images

	r.Use(middleware.RequestID)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Services{
		API:      api,
		Sessions: sessions,
		Admins:   admins,
		Cart:     cartStore,
		Checkout: builder,
		Verifier: verifier,
		Hub:      hub,
	})

	zap.L().Info("🚀 storefront gateway running",
		zap.String("port", cfg.Port),
		zap.String("backend", cfg.APIURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}

func initLogger(format string) {
	var logger *zap.Logger
	var err error
	if format == "json" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
}
