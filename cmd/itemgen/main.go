// Command itemgen generates a deterministic fantasy item catalog and writes
// it as a single JSON document for the asset pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/osse101/ItemForge_Go/internal/config"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/generator"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/writer"
)

func main() {
	var (
		outFlag    = flag.String("out", "", "Output JSON path (overrides ITEMGEN_OUT)")
		countFlag  = flag.Int("count", -1, "Items per category (overrides ITEMGEN_COUNT)")
		seedFlag   = flag.Int64("seed", 0, "Random seed (overrides ITEMGEN_SEED)")
		tuningFlag = flag.String("tuning", "", "Optional YAML tuning file with per-category value bands")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	applyFlags(cfg, *outFlag, *countFlag, *seedFlag)

	if *tuningFlag != "" {
		tuning, err := config.LoadTuning(*tuningFlag)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		cfg.Tuning = tuning
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	initLogger(cfg)

	ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())

	svc := generator.NewService()
	doc, err := svc.Generate(ctx, generator.Options{
		PerCategory:  cfg.ItemsPerCategory,
		Seed:         cfg.Seed,
		TexturesRoot: cfg.TexturesRoot,
		Tuning:       cfg.Tuning,
	})
	if err != nil {
		slog.Error("Catalog generation failed", "error", err)
		os.Exit(1)
	}

	if err := writer.New().Write(ctx, doc, cfg.OutputPath); err != nil {
		slog.Error("Catalog write failed", "error", err)
		os.Exit(1)
	}

	total := cfg.ItemsPerCategory * domain.CategoryCount
	fmt.Printf("Wrote %s with %d items\n", cfg.OutputPath, total)
}

// applyFlags overlays explicitly-set CLI flags onto the env-derived config.
func applyFlags(cfg *config.Config, out string, count int, seed int64) {
	if out != "" {
		cfg.OutputPath = out
	}
	if count >= 0 {
		cfg.ItemsPerCategory = count
	}
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if seedSet {
		cfg.Seed = seed
	}
}
