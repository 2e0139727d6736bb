// Package main provides the extract command that fetches raw ads into the
// bronze layer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"adpipe/internal/config"
	"adpipe/internal/extractor"
	"adpipe/internal/logger"
)

func main() {
	mode := flag.String("mode", config.ModeMock, "Extraction mode: mock or api")
	count := flag.Int("count", 50, "Number of mock ads to generate")
	outputPath := flag.String("output", "", "Path to output JSONL file (default: timestamped under data/bronze)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found")
	}

	log := logger.NewLogger(*logLevel)

	cfg := config.DefaultConfig()
	cfg.Extract.Mode = *mode
	cfg.Extract.MockCount = *count

	if err := cfg.Validate(); err != nil {
		log.Error(fmt.Sprintf("Invalid configuration: %v", err))
		os.Exit(1)
	}

	ext := extractor.NewExtractor(&cfg.Extract, cfg.Layers.BronzeDir, log)

	path, err := ext.Run(*outputPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Extraction failed: %v", err))
		os.Exit(1)
	}

	fmt.Printf("✅ Saved to: %s\n", path)
}
