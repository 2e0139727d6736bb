package ranker

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"adpipe/internal/logger"
	"adpipe/internal/models"
	"adpipe/internal/stage"
)

// csvHeader lists the enriched field names persisted per row. The score
// itself is an ordering key only and is not written out.
var csvHeader = []string{
	"ad_id",
	"ad_text",
	"active",
	"media",
	"country",
	"normalized_at",
	"duration_hours",
	"media_type",
	"language",
	"enriched_at",
}

// Ranker loads enriched gold layer records and writes the top-N leaderboard
// as a CSV file.
type Ranker struct {
	outputDir string
	runner    *stage.Runner[models.EnrichedAd]
	log       *logger.Logger
}

// NewRanker creates a rank stage writing defaults under outputDir.
func NewRanker(outputDir string, log *logger.Logger) *Ranker {
	r := &Ranker{
		outputDir: outputDir,
		log:       log,
	}
	r.runner = stage.NewRunner("rank", models.DecodeEnriched, log)

	return r
}

// Run ranks every valid record from inputPath and writes at most TopN rows,
// descending by score, to a CSV file. An empty outputPath selects a
// timestamped default under the gold directory. An input with no valid
// records is a legitimate outcome and produces a header-only file. The
// ranked records are returned alongside the path for reporting.
func (r *Ranker) Run(inputPath, outputPath string) (string, []models.EnrichedAd, stage.Stats, error) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(r.outputDir, fmt.Sprintf("top10_ads_%s.csv", timestamp))
	}

	r.log.Info("starting ranking", "input", inputPath, "output", outputPath)

	ads, stats, err := r.runner.Collect(inputPath)
	if err != nil {
		return "", nil, stats, fmt.Errorf("ranking failed: %w", err)
	}

	if len(ads) == 0 {
		r.log.Warn("no valid ads found for ranking", "input", inputPath)
	}

	top := TopAds(ads)

	if err := writeCSV(outputPath, top); err != nil {
		return "", nil, stats, fmt.Errorf("ranking failed: %w", err)
	}

	r.log.Info("stage completed",
		"stage", "rank",
		"processed", stats.Processed,
		"rejected", stats.Rejected,
		"ranked", len(top),
		"output", outputPath,
	)

	return outputPath, top, stats, nil
}

func writeCSV(path string, ads []models.EnrichedAd) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, ad := range ads {
		if err := w.Write(csvRow(ad)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}

func csvRow(ad models.EnrichedAd) []string {
	active := ""
	if ad.Active != nil {
		active = *ad.Active
	}

	return []string{
		ad.AdID,
		ad.AdText,
		active,
		strings.Join(ad.Media, "|"),
		ad.Country,
		ad.NormalizedAt.Format(time.RFC3339),
		strconv.FormatFloat(ad.DurationHours, 'f', -1, 64),
		ad.MediaType,
		ad.Language,
		ad.EnrichedAt.Format(time.RFC3339),
	}
}
