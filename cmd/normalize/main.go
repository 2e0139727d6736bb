// Package main provides the normalize command that standardizes raw bronze
// layer records into the silver layer.
package main

import (
	"flag"
	"fmt"
	"os"

	"adpipe/internal/config"
	"adpipe/internal/logger"
	"adpipe/internal/normalizer"
)

func main() {
	inputPath := flag.String("input", "", "Path to raw JSONL input file")
	outputPath := flag.String("output", "", "Path to output JSONL file (default: timestamped under the silver layer)")
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: normalize -input <ads_raw.jsonl> [-output <ads_normalized.jsonl>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logger.NewLogger(*logLevel)

	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Error(fmt.Sprintf("Failed to load config: %v", err))
			os.Exit(1)
		}

		cfg = loaded
	}

	norm := normalizer.NewNormalizer(cfg.Layers.SilverDir, log)

	path, stats, err := norm.Run(*inputPath, *outputPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Normalization failed: %v", err))
		os.Exit(1)
	}

	fmt.Printf("📊 Processed: %d, Rejected: %d\n", stats.Processed, stats.Rejected)
	fmt.Printf("✅ Saved to: %s\n", path)
}
