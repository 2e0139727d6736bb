// Package extractor acquires raw advertisement data from pluggable sources
// and writes it to the bronze layer.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"adpipe/internal/config"
	"adpipe/internal/logger"
	"adpipe/internal/models"
	"adpipe/internal/stage"
)

// Extraction errors.
var (
	ErrUnknownMode        = errors.New("unknown extraction mode")
	ErrMissingAccessToken = errors.New("ACCESS_TOKEN environment variable is required for api mode")
)

// Extractor fetches raw ads from the configured source and persists them as
// bronze layer JSONL.
type Extractor struct {
	cfg *config.ExtractConfig
	dir string
	log *logger.Logger
}

// NewExtractor creates an extract stage writing defaults under outputDir.
func NewExtractor(cfg *config.ExtractConfig, outputDir string, log *logger.Logger) *Extractor {
	return &Extractor{
		cfg: cfg,
		dir: outputDir,
		log: log,
	}
}

// Run fetches ads in the configured mode and writes them to outputPath. An
// empty outputPath selects a timestamped default under the bronze directory.
// It returns the path it wrote. A missing ACCESS_TOKEN in api mode is fatal.
func (e *Extractor) Run(outputPath string) (string, error) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(e.dir, fmt.Sprintf("ads_raw_%s.jsonl", timestamp))
	}

	e.log.Info("starting extraction", "mode", e.cfg.Mode, "output", outputPath)

	var (
		ads []models.RawAd
		err error
	)

	switch e.cfg.Mode {
	case config.ModeMock:
		ads, err = NewMockSource().Fetch(e.cfg.MockCount)
	case config.ModeAPI:
		token := os.Getenv("ACCESS_TOKEN")
		if token == "" {
			return "", ErrMissingAccessToken
		}

		ads, err = NewAPISource(&e.cfg.API, e.log).Fetch(token)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, e.cfg.Mode)
	}

	if err != nil {
		return "", fmt.Errorf("extraction failed: %w", err)
	}

	if err := stage.WriteJSONL(outputPath, ads); err != nil {
		return "", fmt.Errorf("extraction failed: %w", err)
	}

	e.log.Info("extraction completed", "records", len(ads), "output", outputPath)

	return outputPath, nil
}
