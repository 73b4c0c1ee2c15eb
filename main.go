// File: roomgrid/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomgrid/config"
	"roomgrid/handlers"
	"roomgrid/middleware"
	"roomgrid/models"
	"roomgrid/routes"
	"roomgrid/services"
	"roomgrid/upstream"
	"roomgrid/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	venuePath := config.AppConfig.VenueConfigPath
	loadVenue := func() (*models.Venue, error) {
		return config.LoadVenue(venuePath)
	}
	// Validate the venue reference data once at boot so mapping holes fail
	// loudly here instead of on the first request that needs them.
	if _, err := loadVenue(); err != nil {
		logger.Sugar().Fatalf("main: venue configuration rejected: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream client and the resolution engine.
	occupancyClient := upstream.New(
		config.AppConfig.UpstreamBaseURL,
		upstream.Credentials{
			Username: config.AppConfig.UpstreamUser,
			Password: config.AppConfig.UpstreamPassword,
			APIKey:   config.AppConfig.UpstreamAPIKey,
		},
		time.Duration(config.AppConfig.UpstreamTimeoutMS)*time.Millisecond,
	)
	availabilityService := &services.DefaultAvailabilityService{
		Fetcher:       occupancyClient,
		LoadVenue:     loadVenue,
		OffsetMinutes: config.AppConfig.SlotOffsetMinutes,
	}
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		EliteGridHandler:   availabilityHandler.EliteGridHandler,
		ComfortGridHandler: availabilityHandler.ComfortGridHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
