package main

import (
	"context"
	"log"

	"github.com/rodobkn/notes-backend-course/internal/bootstrap"
	"github.com/rodobkn/notes-backend-course/internal/config"
	"github.com/rodobkn/notes-backend-course/internal/server"
	"github.com/rodobkn/notes-backend-course/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize Firestore
	fsClient, err := database.NewFirestoreClient(context.Background(), cfg.Firestore.ProjectID, cfg.Firestore.DatabaseID)
	if err != nil {
		log.Fatalf("Unable to connect to Firestore: %v", err)
	}
	defer fsClient.Close()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(fsClient, cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
