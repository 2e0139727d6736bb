package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Schema validation errors.
var (
	ErrMissingAdID      = errors.New("missing required field ad_id")
	ErrMissingAdText    = errors.New("missing required field ad_text")
	ErrMissingCountry   = errors.New("missing required field country")
	ErrMissingDuration  = errors.New("missing required field duration_hours")
	ErrMissingMediaType = errors.New("missing required field media_type")
	ErrNegativeDuration = errors.New("duration_hours must be non-negative")
)

// normalizedWire mirrors NormalizedAd with pointer fields so that absent
// required keys can be told apart from zero values.
type normalizedWire struct {
	AdID         *string    `json:"ad_id"`
	AdText       *string    `json:"ad_text"`
	Active       *string    `json:"active"`
	Media        []string   `json:"media"`
	Country      *string    `json:"country"`
	NormalizedAt *time.Time `json:"normalized_at"`
}

type enrichedWire struct {
	normalizedWire
	DurationHours *float64   `json:"duration_hours"`
	MediaType     *string    `json:"media_type"`
	Language      *string    `json:"language"`
	EnrichedAt    *time.Time `json:"enriched_at"`
}

// DecodeNormalized parses and validates a serialized silver layer record.
// ad_id, ad_text and country are required; active stays optional and a
// missing media list defaults to empty.
func DecodeNormalized(line []byte) (NormalizedAd, error) {
	var w normalizedWire
	if err := json.Unmarshal(line, &w); err != nil {
		return NormalizedAd{}, fmt.Errorf("invalid normalized record: %w", err)
	}

	ad, err := w.toNormalized()
	if err != nil {
		return NormalizedAd{}, err
	}

	return ad, nil
}

// DecodeEnriched parses and validates a serialized gold layer record.
// On top of the normalized requirements, duration_hours and media_type must
// be present; a missing language defaults to "unknown".
func DecodeEnriched(line []byte) (EnrichedAd, error) {
	var w enrichedWire
	if err := json.Unmarshal(line, &w); err != nil {
		return EnrichedAd{}, fmt.Errorf("invalid enriched record: %w", err)
	}

	base, err := w.normalizedWire.toNormalized()
	if err != nil {
		return EnrichedAd{}, err
	}

	if w.DurationHours == nil {
		return EnrichedAd{}, ErrMissingDuration
	}

	if *w.DurationHours < 0 {
		return EnrichedAd{}, ErrNegativeDuration
	}

	if w.MediaType == nil {
		return EnrichedAd{}, ErrMissingMediaType
	}

	language := LanguageUnknown
	if w.Language != nil {
		language = *w.Language
	}

	ad := EnrichedAd{
		AdID:          base.AdID,
		AdText:        base.AdText,
		Active:        base.Active,
		Media:         base.Media,
		Country:       base.Country,
		NormalizedAt:  base.NormalizedAt,
		DurationHours: *w.DurationHours,
		MediaType:     *w.MediaType,
		Language:      language,
	}

	if w.EnrichedAt != nil {
		ad.EnrichedAt = *w.EnrichedAt
	}

	return ad, nil
}

func (w *normalizedWire) toNormalized() (NormalizedAd, error) {
	if w.AdID == nil {
		return NormalizedAd{}, ErrMissingAdID
	}

	if w.AdText == nil {
		return NormalizedAd{}, ErrMissingAdText
	}

	if w.Country == nil {
		return NormalizedAd{}, ErrMissingCountry
	}

	media := w.Media
	if media == nil {
		media = []string{}
	}

	ad := NormalizedAd{
		AdID:    *w.AdID,
		AdText:  *w.AdText,
		Active:  w.Active,
		Media:   media,
		Country: *w.Country,
	}

	if w.NormalizedAt != nil {
		ad.NormalizedAt = *w.NormalizedAt
	}

	return ad, nil
}
