// Command preview serves an already-generated catalog file over HTTP for
// the asset pipeline to fetch during development.
package main

import (
	"flag"
	"log"

	"github.com/osse101/ItemForge_Go/internal/config"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/server"
)

func main() {
	var (
		portFlag    = flag.Int("port", 0, "Listen port (overrides ITEMGEN_PREVIEW_PORT)")
		catalogFlag = flag.String("catalog", "", "Catalog JSON path (overrides ITEMGEN_OUT)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *portFlag != 0 {
		cfg.PreviewPort = *portFlag
	}
	if *catalogFlag != "" {
		cfg.OutputPath = *catalogFlag
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		false,
	))

	srv := server.NewServer(cfg.PreviewPort, cfg.OutputPath)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
