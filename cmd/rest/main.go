package main

import (
	"context"
	"log"

	"cash-trader-be/internal/bootstrap"
	"cash-trader-be/internal/config"
	"cash-trader-be/internal/server"
	"cash-trader-be/internal/tracer"
	"cash-trader-be/pkg/database"
)

func main() {
	// 0. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies (container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Load the product catalog. A register without products cannot ring
	// up anything, so a failed first load is fatal.
	if err := container.CatalogService.Refresh(context.Background()); err != nil {
		log.Fatalf("Unable to load product catalog: %v", err)
	}

	// 5. Start background services
	go func() {
		log.Println("Background: Starting Print Worker...")
		if err := container.PrintWorkerService.Consume(context.Background()); err != nil {
			log.Printf("Background Print Worker Error: %v", err)
		}
	}()

	// 6. Initialize and run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
