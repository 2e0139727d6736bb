// Package main provides the unified pipeline command that chains extraction,
// normalization, enrichment and ranking.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"adpipe/internal/config"
	"adpipe/internal/enricher"
	"adpipe/internal/extractor"
	"adpipe/internal/logger"
	"adpipe/internal/normalizer"
	"adpipe/internal/ranker"
	"adpipe/internal/report"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	mode := flag.String("mode", "", "Extraction mode override: mock or api")
	flag.Parse()

	// Load .env so ACCESS_TOKEN can live in a local file
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found")
	}

	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *mode != "" {
		cfg.Extract.Mode = *mode
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	runID := uuid.NewString()
	log := logger.NewLogger(cfg.Logging.Level).With("run_id", runID)

	log.Info("🚀 Starting Ad Pipeline", "mode", cfg.Extract.Mode)

	startTime := time.Now()

	// Phase 1: Extraction (bronze)
	log.Info("Phase 1: Extraction...")

	ext := extractor.NewExtractor(&cfg.Extract, cfg.Layers.BronzeDir, log)

	rawPath, err := ext.Run("")
	if err != nil {
		log.Error(fmt.Sprintf("❌ Extraction failed: %v", err))
		os.Exit(1)
	}

	// Phase 2: Normalization (silver)
	log.Info("Phase 2: Normalization...")

	norm := normalizer.NewNormalizer(cfg.Layers.SilverDir, log)

	normalizedPath, normStats, err := norm.Run(rawPath, "")
	if err != nil {
		log.Error(fmt.Sprintf("❌ Normalization failed: %v", err))
		os.Exit(1)
	}

	// Phase 3: Enrichment (gold)
	log.Info("Phase 3: Enrichment...")

	enr := enricher.NewEnricher(enricher.WhatlangDetector{}, cfg.Layers.GoldDir, log)

	enrichedPath, enrichStats, err := enr.Run(normalizedPath, "")
	if err != nil {
		log.Error(fmt.Sprintf("❌ Enrichment failed: %v", err))
		os.Exit(1)
	}

	// Phase 4: Ranking (top-10 leaderboard)
	log.Info("Phase 4: Ranking...")

	rnk := ranker.NewRanker(cfg.Layers.GoldDir, log)

	csvPath, topAds, rankStats, err := rnk.Run(enrichedPath, "")
	if err != nil {
		log.Error(fmt.Sprintf("❌ Ranking failed: %v", err))
		os.Exit(1)
	}

	log.Info("✨ Pipeline Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Println("📊 Summary Report")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Run ID:      %s\n", runID)
	fmt.Printf("Normalized:  %d processed, %d rejected\n", normStats.Processed, normStats.Rejected)
	fmt.Printf("Enriched:    %d processed, %d rejected\n", enrichStats.Processed, enrichStats.Rejected)
	fmt.Printf("Ranked:      %d processed, %d rejected\n", rankStats.Processed, rankStats.Rejected)
	fmt.Printf("Leaderboard: %s\n", csvPath)
	fmt.Printf("Duration:    %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
	fmt.Print(report.RenderTopAds(topAds))
}
