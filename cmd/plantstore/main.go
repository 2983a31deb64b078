package main

import (
	"context"
	"log"

	"github.com/avc/plantstore/internal/app"
	"github.com/avc/plantstore/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.NewApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
