package main

import (
	"context"
	"log"

	"diet-server/confs"
	"diet-server/db"
	"diet-server/logging"
	"diet-server/server"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// connect to the configured database and migrate it
	database, err := db.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to DB: %v", err)
	}
	defer database.Close()

	// run server
	if err := server.NewServer(cfg, database, logger).Start(ctx); err != nil {
		logger.Errorf("server stopped: %v", err)
	}
}
