package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"soapbox/internal/config"
	"soapbox/internal/logsink"
)

func main() {
	var addr string
	var mock bool
	flag.StringVar(&addr, "addr", ":8080", "Address to bind")
	flag.BoolVar(&mock, "mock", false, "Serve the mock catalog even when upstream credentials are present")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()
	if sinkCfg := logsink.FromEnv(); sinkCfg.Enabled() {
		shutdown, err := logsink.Setup(ctx, sinkCfg)
		if err != nil {
			log.Fatalf("failed to set up log exporter: %v", err)
		}
		defer func() {
			_ = shutdown(ctx)
		}()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := runServer(cfg, addr, mock); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
