package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fadhlanhapp/sharetab-checkout/config"
	"github.com/fadhlanhapp/sharetab-checkout/handlers"
	"github.com/fadhlanhapp/sharetab-checkout/logger"
	"github.com/fadhlanhapp/sharetab-checkout/routes"
	"github.com/fadhlanhapp/sharetab-checkout/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "demo" {
		runDemo(os.Stdout, cfg.Pricing.Policy())
		return
	}

	appLog := logger.New(logger.Options{
		ServiceName: "sharetab-checkout",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})
	ctx := context.Background()

	gin.SetMode(cfg.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Initialize New Relic
	if cfg.NewRelic.Enabled() {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			appLog.Error(ctx, "failed to initialize new relic", err)
		} else {
			router.Use(nrgin.Middleware(app))
		}
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: !allowsAnyOrigin(cfg.App.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Initialize services
	calculationService := services.NewCalculationService(cfg.Pricing.Policy(), appLog)

	// Set up routes
	routes.SetupRoutes(router, handlers.NewHandlerServices(calculationService, appLog))

	ctx = appLog.WithField(ctx, "port", cfg.App.Port)
	appLog.Info(ctx, "server starting")
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLog.Error(ctx, "server stopped", err)
		os.Exit(1)
	}
}

func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
