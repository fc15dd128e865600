// @title Focus Flash Storefront API
// @version 1.0
// @description Catalog, cart, favorites and admin CMS API for the Focus Flash exam-prep storefront.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/config"
	"github.com/YokoReis/focus-flash-forge-23/metrics"
	"github.com/YokoReis/focus-flash-forge-23/middleware"
	"github.com/YokoReis/focus-flash-forge-23/persistence"
	"github.com/YokoReis/focus-flash-forge-23/routes"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/YokoReis/focus-flash-forge-23/store"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Connect the snapshot backend
	backend, err := persistence.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s backend: %v", cfg.StoreBackend, err)
	}
	defer backend.Close()

	// Admin authenticator (bcrypt hash wins over the plain password)
	authenticator, err := services.NewAdminAuthenticator(cfg.AdminPasswordHash, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to initialize admin authenticator: %v", err)
	}

	opts := []store.Option{
		store.WithAuthenticator(authenticator),
		store.WithKeyPrefix(cfg.StoreKeyPrefix),
		store.WithWriteTimeout(cfg.WriteTimeout),
		store.WithOnChange(func(c store.Collection) {
			metrics.RecordStoreMutation(string(c))
		}),
	}
	if cfg.SeedFile != "" {
		seed, err := store.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed catalog: %v", err)
		}
		opts = append(opts, store.WithSeed(seed))
		log.Printf("✅ Seed catalog loaded from %s (%d products)", cfg.SeedFile, len(seed))
	}

	catalog, err := store.New(ctx, backend.Store, opts...)
	if err != nil {
		log.Fatalf("Failed to load catalog store: %v", err)
	}
	log.Printf("✅ Catalog store ready (%d products, backend %s)", len(catalog.Products()), cfg.StoreBackend)

	// Initialize JWT Service for Admin Auth
	jwtService, err := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	if cfg.IsProduction() && cfg.JWTSecret == config.DefaultConfig().JWTSecret {
		log.Fatal("❌ JWT_SECRET must be set in production")
	}

	deps := routes.Dependencies{
		Store:        catalog,
		JWT:          jwtService,
		Activity:     services.NewActivityLogService(0),
		Mailer:       services.NewResendClient(cfg.ResendAPIKey, cfg.ResendFromEmail),
		CORSOrigins:  cfg.CORSOrigins,
		SecureCookie: cfg.IsProduction(),
	}

	// Initialize Cloudinary service
	if cfg.CloudinaryEnabled() {
		cld, err := services.NewCloudinaryService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		deps.Images = cld
	} else {
		log.Println("⚠️  Cloudinary not configured, image uploads disabled")
	}
	if deps.Mailer == nil {
		log.Println("⚠️  RESEND_API_KEY not set, quote emails disabled")
	}

	// Redis-backed limiter when Redis is around, per-process buckets otherwise
	if backend.Redis != nil {
		deps.RateLimiter = middleware.RedisRateLimiter(backend.Redis, cfg.RateLimitRequests, cfg.RateLimitWindow)
	} else {
		deps.RateLimiter = middleware.LocalRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
