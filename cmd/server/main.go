package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/facturaIA/docid-service/api"
	"github.com/facturaIA/docid-service/internal/config"
	"github.com/facturaIA/docid-service/internal/logging"
	"github.com/facturaIA/docid-service/internal/pipeline"
)

func main() {
	configPath := "config.yaml"
	if path := os.Getenv("DOCID_CONFIG"); path != "" {
		configPath = path
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Warning: could not load %s (%v), using defaults", configPath, err)
		cfg = config.Default()
	}
	if prefix := os.Getenv("DOCID_ID_PREFIX"); prefix != "" {
		cfg.IDPrefix = prefix
	}
	if addr := os.Getenv("DOCID_LISTEN_ADDR"); addr != "" {
		cfg.Server.ListenAddr = addr
	}

	logger := logging.New(cfg.Logging)

	p := pipeline.New(cfg.IDPrefix, logger)
	handler := api.NewHandler(cfg, p)
	router := handler.SetupRoutes()

	logger.Info("starting docid service",
		"addr", cfg.Server.ListenAddr,
		"id_prefix", cfg.IDPrefix,
		"ocr_engine", cfg.OCR.Engine,
	)
	fmt.Printf("Endpoints:\n")
	fmt.Printf("  POST http://%s/api/process   - derive a document identifier\n", cfg.Server.ListenAddr)
	fmt.Printf("  POST http://%s/api/verify    - verify a document against an identifier\n", cfg.Server.ListenAddr)
	fmt.Printf("  POST http://%s/api/compare   - compare two documents\n", cfg.Server.ListenAddr)
	fmt.Printf("  POST http://%s/api/universal - derive a format-sensitive identifier\n", cfg.Server.ListenAddr)
	fmt.Printf("  POST http://%s/api/batch     - process every file in a directory\n", cfg.Server.ListenAddr)
	fmt.Printf("  GET  http://%s/health        - health check\n", cfg.Server.ListenAddr)

	if err := http.ListenAndServe(cfg.Server.ListenAddr, router); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
