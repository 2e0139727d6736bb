// Package main provides the enrich command that derives analytical fields
// for silver layer records.
package main

import (
	"flag"
	"fmt"
	"os"

	"adpipe/internal/config"
	"adpipe/internal/enricher"
	"adpipe/internal/logger"
)

func main() {
	inputPath := flag.String("input", "", "Path to normalized JSONL input file")
	outputPath := flag.String("output", "", "Path to output JSONL file (default: timestamped under the gold layer)")
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: enrich -input <ads_normalized.jsonl> [-output <ads_enriched.jsonl>]")
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

	enr := enricher.NewEnricher(enricher.WhatlangDetector{}, cfg.Layers.GoldDir, log)

	path, stats, err := enr.Run(*inputPath, *outputPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Enrichment failed: %v", err))
		os.Exit(1)
	}

	fmt.Printf("📊 Processed: %d, Rejected: %d\n", stats.Processed, stats.Rejected)
	fmt.Printf("✅ Saved to: %s\n", path)
}
