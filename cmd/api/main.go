package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	httpadapter "github.com/mpbridge/mp-relay/internal/adapter/primary/http"
	"github.com/mpbridge/mp-relay/internal/adapter/secondary/mercadopago"
	"github.com/mpbridge/mp-relay/internal/adapter/secondary/ordersvc"
	"github.com/mpbridge/mp-relay/internal/config"
	"github.com/mpbridge/mp-relay/internal/core/service"
)

func main() {
	// Get configuration from environment variables
	cfg := config.Load()

	if cfg.MPAccessToken == "" {
		log.Println("Warning: MP_ACCESS_TOKEN is not set, payment lookups will fail")
	}
	if cfg.WebhookSecret == "" {
		log.Println("Warning: WEBHOOK_SECRET is not set, order notifications go out unauthenticated")
	}

	// Initialize secondary adapters: MercadoPago client and order
	// notifier (implement output ports)
	mpClient := mercadopago.NewClient(mercadopago.Config{
		BaseURL:         cfg.MPAPIURL,
		AccessToken:     cfg.MPAccessToken,
		BackURLSuccess:  cfg.MPBackURLSuccess,
		BackURLFailure:  cfg.MPBackURLFailure,
		BackURLPending:  cfg.MPBackURLPending,
		NotificationURL: cfg.MPWebhookURL,
	})
	orderNotifier := ordersvc.NewNotifier(cfg.OrderAPIURL, cfg.OrderWebhookPath, cfg.WebhookSecret)

	// Initialize core services (implement input ports)
	webhookService := service.NewWebhookService(mpClient, orderNotifier)
	preferenceService := service.NewPreferenceService(mpClient)

	// Initialize primary adapters: HTTP handlers (use input ports)
	webhookHandler := httpadapter.NewWebhookHandler(webhookService, cfg.MPWebhookSecret)
	preferenceHandler := httpadapter.NewPreferenceHandler(preferenceService)

	// Initialize Echo
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Routes
	mp := e.Group("/mp")
	mp.POST("/webhook", webhookHandler.HandleWebhook)
	mp.POST("/preference", preferenceHandler.HandleCreatePreference)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting webhook relay on %s (order service: %s)", addr, cfg.OrderAPIURL)
	if err := e.Start(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
