// Package main provides the rank command that writes the top-10 leaderboard
// CSV from enriched records.
package main

import (
	"flag"
	"fmt"
	"os"

	"adpipe/internal/config"
	"adpipe/internal/logger"
	"adpipe/internal/ranker"
	"adpipe/internal/report"
)

func main() {
	inputPath := flag.String("input", "", "Path to enriched JSONL input file")
	outputPath := flag.String("output", "", "Path to output CSV file (default: timestamped under the gold layer)")
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: rank -input <ads_enriched.jsonl> [-output <top10_ads.csv>]")
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

	rnk := ranker.NewRanker(cfg.Layers.GoldDir, log)

	path, topAds, stats, err := rnk.Run(*inputPath, *outputPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Ranking failed: %v", err))
		os.Exit(1)
	}

	fmt.Printf("📊 Processed: %d, Rejected: %d\n", stats.Processed, stats.Rejected)
	fmt.Printf("✅ Saved to: %s\n\n", path)
	fmt.Print(report.RenderTopAds(topAds))
}
