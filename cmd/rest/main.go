package main

import (
	"context"
	"log"

	"github.com/dellis317/provocations/internal/bootstrap"
	"github.com/dellis317/provocations/internal/config"
	"github.com/dellis317/provocations/internal/server"
	"github.com/dellis317/provocations/internal/tracer"
	"github.com/dellis317/provocations/pkg/database"
)

func main() {
	// Tracing is a no-op unless OTEL_ENABLED is set
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background workers
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()
	container.NotificationService.Start()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
