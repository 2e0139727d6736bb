// Package normalizer transforms raw bronze layer records into the
// standardized silver layer format, discriminating by record source.
package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"adpipe/internal/logger"
	"adpipe/internal/models"
	"adpipe/internal/stage"
)

// ErrUnknownSource is returned for raw records whose source tag is neither
// "mock" nor "api". Such records are rejected, not defaulted.
var ErrUnknownSource = errors.New("unknown source")

// apiDefaultCountry is used for API records because the ads-archive API does
// not report a country.
const apiDefaultCountry = "US"

// mockPayload is the native field layout of the mock generator.
type mockPayload struct {
	AdID    string   `json:"ad_id"`
	AdText  string   `json:"ad_text"`
	Active  *string  `json:"active"`
	Media   []string `json:"media"`
	Country string   `json:"country"`
}

// apiPayload carries the differently-named fields of the ads-archive API.
type apiPayload struct {
	ID             string `json:"id"`
	AdCreativeBody string `json:"ad_creative_body"`
}

// Normalizer transforms raw ads into normalized silver layer records.
type Normalizer struct {
	outputDir string
	runner    *stage.Runner[models.NormalizedAd]
	log       *logger.Logger
}

// NewNormalizer creates a normalize stage writing defaults under outputDir.
func NewNormalizer(outputDir string, log *logger.Logger) *Normalizer {
	n := &Normalizer{
		outputDir: outputDir,
		log:       log,
	}
	n.runner = stage.NewRunner("normalize", n.normalizeLine, log)

	return n
}

// Run normalizes every valid record from inputPath and writes the result as
// JSONL. An empty outputPath selects a timestamped default under the silver
// directory. It returns the path it wrote.
func (n *Normalizer) Run(inputPath, outputPath string) (string, stage.Stats, error) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(n.outputDir, fmt.Sprintf("ads_normalized_%s.jsonl", timestamp))
	}

	n.log.Info("starting normalization", "input", inputPath, "output", outputPath)

	stats, err := n.runner.Run(inputPath, outputPath)
	if err != nil {
		return "", stats, fmt.Errorf("normalization failed: %w", err)
	}

	return outputPath, stats, nil
}

// normalizeLine parses one raw record and applies source-specific field
// mapping.
func (n *Normalizer) normalizeLine(line []byte) (models.NormalizedAd, error) {
	var raw models.RawAd
	if err := json.Unmarshal(line, &raw); err != nil {
		return models.NormalizedAd{}, fmt.Errorf("invalid raw record: %w", err)
	}

	switch raw.Source {
	case models.SourceMock:
		return normalizeMock(raw.RawData)
	case models.SourceAPI:
		return normalizeAPI(raw.RawData)
	default:
		return models.NormalizedAd{}, fmt.Errorf("%w: %q", ErrUnknownSource, raw.Source)
	}
}

// normalizeMock maps mock payload fields 1:1, defaulting absent values.
func normalizeMock(data json.RawMessage) (models.NormalizedAd, error) {
	var p mockPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return models.NormalizedAd{}, fmt.Errorf("invalid mock payload: %w", err)
	}

	media := p.Media
	if media == nil {
		media = []string{}
	}

	return models.NormalizedAd{
		AdID:         p.AdID,
		AdText:       p.AdText,
		Active:       p.Active,
		Media:        media,
		Country:      p.Country,
		NormalizedAt: time.Now().UTC(),
	}, nil
}

// normalizeAPI maps the API's identifier and body fields onto the normalized
// shape. The API supplies neither duration text nor media, and no country.
func normalizeAPI(data json.RawMessage) (models.NormalizedAd, error) {
	var p apiPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return models.NormalizedAd{}, fmt.Errorf("invalid api payload: %w", err)
	}

	return models.NormalizedAd{
		AdID:         p.ID,
		AdText:       p.AdCreativeBody,
		Active:       nil,
		Media:        []string{},
		Country:      apiDefaultCountry,
		NormalizedAt: time.Now().UTC(),
	}, nil
}
