// Package models defines the record shapes for each pipeline layer.
package models

import (
	"encoding/json"
	"time"
)

// Record sources carried on the raw wrapper.
const (
	SourceMock = "mock"
	SourceAPI  = "api"
)

// Media type classifications.
const (
	MediaImageOnly = "image-only"
	MediaVideoOnly = "video-only"
	MediaBoth      = "both"
	MediaNone      = "none"
)

// LanguageUnknown is the sentinel for undetectable text language.
const LanguageUnknown = "unknown"

// RawAd is a bronze layer record: an opaque source payload wrapped with
// ingestion metadata. The payload shape depends on the source tag and is not
// type-checked before normalization.
type RawAd struct {
	Source        string          `json:"source"`
	IngestionTime string          `json:"ingestion_time"`
	RawData       json.RawMessage `json:"raw_data"`
}

// NormalizedAd is a silver layer record with a consistent field structure
// across data sources.
type NormalizedAd struct {
	AdID         string    `json:"ad_id"`
	AdText       string    `json:"ad_text"`
	Active       *string   `json:"active"`
	Media        []string  `json:"media"`
	Country      string    `json:"country"`
	NormalizedAt time.Time `json:"normalized_at"`
}

// EnrichedAd is a gold layer record: all normalized fields plus derived
// analytical fields. DurationHours and MediaType are pure functions of the
// Active and Media fields.
type EnrichedAd struct {
	AdID          string    `json:"ad_id"`
	AdText        string    `json:"ad_text"`
	Active        *string   `json:"active"`
	Media         []string  `json:"media"`
	Country       string    `json:"country"`
	NormalizedAt  time.Time `json:"normalized_at"`
	DurationHours float64   `json:"duration_hours"`
	MediaType     string    `json:"media_type"`
	Language      string    `json:"language"`
	EnrichedAt    time.Time `json:"enriched_at"`
}
