package enricher

import (
	"fmt"
	"path/filepath"
	"time"

	"adpipe/internal/logger"
	"adpipe/internal/models"
	"adpipe/internal/stage"
)

// Enricher transforms normalized ads from the silver layer into enriched
// gold layer records.
type Enricher struct {
	detector  Detector
	outputDir string
	runner    *stage.Runner[models.EnrichedAd]
	log       *logger.Logger
}

// NewEnricher creates an enrich stage writing defaults under outputDir.
func NewEnricher(detector Detector, outputDir string, log *logger.Logger) *Enricher {
	e := &Enricher{
		detector:  detector,
		outputDir: outputDir,
		log:       log,
	}
	e.runner = stage.NewRunner("enrich", e.enrichLine, log)

	return e
}

// Run enriches every valid record from inputPath and writes the result as
// JSONL. An empty outputPath selects a timestamped default under the gold
// directory. It returns the path it wrote.
func (e *Enricher) Run(inputPath, outputPath string) (string, stage.Stats, error) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(e.outputDir, fmt.Sprintf("ads_enriched_%s.jsonl", timestamp))
	}

	e.log.Info("starting enrichment", "input", inputPath, "output", outputPath)

	stats, err := e.runner.Run(inputPath, outputPath)
	if err != nil {
		return "", stats, fmt.Errorf("enrichment failed: %w", err)
	}

	return outputPath, stats, nil
}

// enrichLine validates one normalized record and derives duration, media
// type and language from it.
func (e *Enricher) enrichLine(line []byte) (models.EnrichedAd, error) {
	ad, err := models.DecodeNormalized(line)
	if err != nil {
		return models.EnrichedAd{}, err
	}

	active := ""
	if ad.Active != nil {
		active = *ad.Active
	}

	return models.EnrichedAd{
		AdID:          ad.AdID,
		AdText:        ad.AdText,
		Active:        ad.Active,
		Media:         ad.Media,
		Country:       ad.Country,
		NormalizedAt:  ad.NormalizedAt,
		DurationHours: ParseDuration(active),
		MediaType:     ClassifyMedia(ad.Media),
		Language:      DetectLanguage(e.detector, ad.AdText),
		EnrichedAt:    time.Now().UTC(),
	}, nil
}
