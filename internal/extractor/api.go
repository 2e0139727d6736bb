package extractor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adpipe/internal/config"
	"adpipe/internal/logger"
	"adpipe/internal/models"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Fields requested from the ads-archive endpoint.
var apiFields = []string{
	"id",
	"ad_creative_body",
	"page_name",
	"ad_snapshot_url",
	"impressions",
	"spend",
}

// APISource fetches real ads from the ads-archive API with config-driven
// retry logic.
type APISource struct {
	client *http.Client
	cfg    *config.APIConfig
	log    *logger.Logger
}

// NewAPISource creates an API source with the given settings.
func NewAPISource(cfg *config.APIConfig, log *logger.Logger) *APISource {
	return &APISource{
		client: &http.Client{
			Timeout: cfg.Retry.GetTimeout(),
		},
		cfg: cfg,
		log: log,
	}
}

// Fetch retrieves ads from the archive endpoint and wraps each one with
// source and ingestion metadata. Attempts are retried with exponential
// backoff per the configured policy.
func (s *APISource) Fetch(accessToken string) ([]models.RawAd, error) {
	var lastErr error

	for attempt := 1; attempt <= s.cfg.Retry.MaxAttempts; attempt++ {
		if delay := s.cfg.Retry.GetRetryDelay(attempt); delay > 0 {
			s.log.Debug("retrying API fetch", "attempt", attempt, "delay", delay)
			time.Sleep(delay)
		}

		data, err := s.fetchOnce(accessToken)
		if err == nil {
			return s.wrapRecords(data), nil
		}

		lastErr = err
		s.log.Warn("API fetch attempt failed", "attempt", attempt, "error", err.Error())
	}

	return nil, fmt.Errorf("API fetch failed after %d attempts: %w", s.cfg.Retry.MaxAttempts, lastErr)
}

func (s *APISource) fetchOnce(accessToken string) ([]json.RawMessage, error) {
	countries, err := json.Marshal(s.cfg.Countries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode countries: %w", err)
	}

	params := url.Values{}
	params.Set("access_token", accessToken)
	params.Set("search_terms", s.cfg.SearchTerms)
	params.Set("ad_reached_countries", string(countries))
	params.Set("ad_type", s.cfg.AdType)
	params.Set("fields", strings.Join(apiFields, ","))

	resp, err := s.client.Get(s.cfg.BaseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	var parsed struct {
		Data []json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	s.log.Info("received ads from API", "count", len(parsed.Data))

	return parsed.Data, nil
}

func (s *APISource) wrapRecords(data []json.RawMessage) []models.RawAd {
	ingestionTime := time.Now().UTC().Format(time.RFC3339)

	ads := make([]models.RawAd, 0, len(data))
	for _, payload := range data {
		ads = append(ads, models.RawAd{
			Source:        models.SourceAPI,
			IngestionTime: ingestionTime,
			RawData:       payload,
		})
	}

	return ads
}
