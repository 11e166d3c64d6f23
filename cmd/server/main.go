package main

import (
	"log"
	"net/http"
	"os"
	"time"
	"transport-tycoon/internal/api"
	"transport-tycoon/internal/config"
	"transport-tycoon/internal/platform/logging"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It loads configuration, builds the logger and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	router := api.NewRouter(cfg.SimulationOptions(), logger)

	logger.Infow("server listening", "addr", ":"+cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalw("server stopped", "err", err)
	}
}
