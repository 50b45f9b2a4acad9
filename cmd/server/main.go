package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"billing-backend/internal/auth"
	"billing-backend/internal/cache"
	"billing-backend/internal/config"
	"billing-backend/internal/database"
	"billing-backend/internal/db"
	"billing-backend/internal/handlers"
	"billing-backend/internal/health"
	h "billing-backend/internal/http"
	"billing-backend/internal/middleware"
	"billing-backend/internal/repositories"
	"billing-backend/internal/services"
	"billing-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to database
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (customer list served from database)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations (schema + stored routines, embedded in binary)
	migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	billRepo := repositories.NewBillRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)

	// Initialize services
	billService := services.NewBillService(billRepo)
	customerService := services.NewCustomerService(customerRepo)
	pdfService := services.NewPDFService("")

	// Initialize handlers
	billHandler := handlers.NewBillHandler(billService, pdfService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	authHandler := handlers.NewAuthHandler(cfg, jwtManager)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(billHandler, customerHandler, authHandler, healthHandler, authMiddleware, cfg.Auth.ProtectAPI)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
