package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/config"
	"github.com/junaidrashid-git/cornerstore-api/database"
	"github.com/junaidrashid-git/cornerstore-api/repository"
	"github.com/junaidrashid-git/cornerstore-api/routes"
)

func main() {
	var (
		migrate = flag.Bool("migrate", true, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed an empty database with the bootstrap rows")
	)
	flag.Parse()

	log.Println("✅ Starting application...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	defer database.Close(db)

	if *migrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}
	}
	if *seed || cfg.App.SeedOnStart {
		if err := database.SeedData(db); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(&cfg.App, repository.New(db))

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Server running on port %s...", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Forced shutdown: %v", err)
	}
}
