package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/techmagnet/seacheck/src/config"
	"github.com/techmagnet/seacheck/src/database"
	"github.com/techmagnet/seacheck/src/handlers"
	"github.com/techmagnet/seacheck/src/logging"
	"github.com/techmagnet/seacheck/src/middleware"
	"github.com/techmagnet/seacheck/src/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database. An unreachable store is not fatal: the server
	// starts anyway and every request touching the store fails individually.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize database, continuing degraded")
		db = database.NewUnavailable()
	} else {
		log.Info().Msg("database connected")
	}
	defer db.Close()

	// Initialize session cookie signing
	if err := middleware.SetSessionSecret(cfg.SessionSecret); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session secret")
	}

	// Initialize services
	giftCardService := services.NewGiftCardService(db)
	adminService := services.NewAdminService(db)
	sessionService := services.NewSessionService(db, cfg.SessionTTL)
	balanceChecker := services.NewBalanceChecker(
		time.Duration(cfg.BalanceDelayMinMs)*time.Millisecond,
		time.Duration(cfg.BalanceDelayMaxMs)*time.Millisecond,
	)
	cleanupService := services.NewCleanupService(sessionService, cfg.EnableSessionCleanup)

	// Auto-seed the admin account on first run (if ADMIN_EMAIL and
	// ADMIN_PASSWORD are set and no account exists yet)
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		exists, err := adminService.AdminExists(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("failed to check for existing admin account")
		} else if !exists {
			if _, err := adminService.RegisterAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
				log.Error().Err(err).Msg("failed to seed admin account")
			} else {
				log.Info().Str("email", cfg.AdminEmail).Msg("initial admin account created")
			}
		}
	}

	// Start background cleanup
	cleanupService.Start(context.Background())

	// Rate limiter is an explicitly-owned instance: in-process only, no
	// cross-instance guarantee when multiple replicas run.
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Window:      cfg.RateLimitWindow,
		MaxRequests: cfg.RateLimitMaxRequests,
	})
	defer rateLimiter.Stop()

	// Create Gin router
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(newCORSMiddleware(cfg.AllowedOrigins))
	router.Use(rateLimiter.Middleware())

	setupRoutes(router, db, giftCardService, adminService, sessionService, balanceChecker)

	// HTTP server with timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	cleanupService.Stop()

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(router *gin.Engine, db *database.Database, giftCardService *services.GiftCardService, adminService *services.AdminService, sessionService *services.SessionService, balanceChecker *services.BalanceChecker) {
	cardHandler := handlers.NewCardHandler(giftCardService, balanceChecker)
	adminHandler := handlers.NewAdminHandler(adminService, sessionService, giftCardService)
	healthHandler := handlers.NewHealthHandler(db, giftCardService)

	// Public endpoints
	router.POST("/detect-card-type", cardHandler.HandleDetectCardType)
	router.POST("/check-balance", cardHandler.HandleCheckBalance)

	// Admin authentication
	router.GET("/admin/check", adminHandler.HandleAdminCheck)
	router.POST("/admin/register", adminHandler.HandleRegister)
	router.POST("/admin/login", adminHandler.HandleLogin)
	router.POST("/admin/logout", middleware.SessionRequired(sessionService), adminHandler.HandleLogout)

	// Admin panel (require an authenticated admin session)
	router.GET("/admin/history", middleware.AdminRequired(sessionService), adminHandler.HandleHistory)
	router.DELETE("/admin/record/:id", middleware.AdminRequired(sessionService), adminHandler.HandleDeleteRecord)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)
}

func newCORSMiddleware(allowedOrigins string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if allowedOrigins == "" {
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return origin == "http://localhost" || origin == "http://localhost:8080"
		}
	} else {
		var origins []string
		for _, o := range strings.Split(allowedOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		corsConfig.AllowOrigins = origins
	}
	return cors.New(corsConfig)
}
