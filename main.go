package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"homestay-backend/config"
	"homestay-backend/controllers"
	"homestay-backend/routes"
	"homestay-backend/services"
	"homestay-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied.")

	// Initialize services
	codeService := services.NewBookingCodeService(db)
	rulesService := services.NewHouseRulesService(db)
	guestService := services.NewGuestService(db)
	stayService := services.NewStayService(db, codeService)
	documentService := services.NewDocumentService(db, utils.EnvOrDefault("UPLOAD_DIR", "./uploads"))
	registrationService := services.NewRegistrationService(db, codeService, rulesService)

	// Initialize controllers
	dashboardController := controllers.NewDashboardController(stayService, guestService)
	guestController := controllers.NewGuestController(guestService)
	stayController := controllers.NewStayController(stayService)
	documentController := controllers.NewDocumentController(documentService)
	rulesController := controllers.NewHouseRulesController(rulesService)
	codeController := controllers.NewBookingCodeController(codeService)
	publicController := controllers.NewPublicController(registrationService)

	// Build router
	router := routes.SetupRouter(
		dashboardController,
		guestController,
		stayController,
		documentController,
		rulesController,
		codeController,
		publicController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
