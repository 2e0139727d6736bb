package models

import (
	"errors"
	"testing"
)

func TestDecodeNormalized(t *testing.T) {
	line := []byte(`{"ad_id":"a1","ad_text":"hello","active":"Active for 1 hr","media":["image"],"country":"US","normalized_at":"2026-08-27T10:00:00Z"}`)

	ad, err := DecodeNormalized(line)
	if err != nil {
		t.Fatalf("DecodeNormalized returned unexpected error: %v", err)
	}

	if ad.AdID != "a1" || ad.AdText != "hello" || ad.Country != "US" {
		t.Errorf("Unexpected decode result: %+v", ad)
	}

	if ad.Active == nil || *ad.Active != "Active for 1 hr" {
		t.Errorf("Active = %v, want Active for 1 hr", ad.Active)
	}

	if ad.NormalizedAt.IsZero() {
		t.Error("NormalizedAt not decoded")
	}
}

func TestDecodeNormalized_Defaults(t *testing.T) {
	// active and media absent: null duration and empty list, not an error
	ad, err := DecodeNormalized([]byte(`{"ad_id":"a1","ad_text":"x","country":"US"}`))
	if err != nil {
		t.Fatalf("DecodeNormalized returned unexpected error: %v", err)
	}

	if ad.Active != nil {
		t.Errorf("Active = %v, want nil", ad.Active)
	}

	if ad.Media == nil || len(ad.Media) != 0 {
		t.Errorf("Media = %v, want empty list", ad.Media)
	}
}

func TestDecodeNormalized_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"missing ad_id", `{"ad_text":"x","country":"US"}`, ErrMissingAdID},
		{"missing ad_text", `{"ad_id":"a","country":"US"}`, ErrMissingAdText},
		{"missing country", `{"ad_id":"a","ad_text":"x"}`, ErrMissingCountry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeNormalized([]byte(tt.line))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeNormalized error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := DecodeNormalized([]byte(`not json`)); err == nil {
		t.Error("DecodeNormalized accepted malformed JSON")
	}
}

func TestDecodeEnriched(t *testing.T) {
	line := []byte(`{"ad_id":"a1","ad_text":"hello","active":null,"media":[],"country":"US","duration_hours":2.5,"media_type":"both","language":"en","enriched_at":"2026-08-27T11:00:00Z"}`)

	ad, err := DecodeEnriched(line)
	if err != nil {
		t.Fatalf("DecodeEnriched returned unexpected error: %v", err)
	}

	if ad.DurationHours != 2.5 || ad.MediaType != MediaBoth || ad.Language != "en" {
		t.Errorf("Unexpected decode result: %+v", ad)
	}
}

func TestDecodeEnriched_LanguageDefaultsToUnknown(t *testing.T) {
	line := []byte(`{"ad_id":"a1","ad_text":"x","country":"US","duration_hours":0,"media_type":"none"}`)

	ad, err := DecodeEnriched(line)
	if err != nil {
		t.Fatalf("DecodeEnriched returned unexpected error: %v", err)
	}

	if ad.Language != LanguageUnknown {
		t.Errorf("Language = %q, want unknown", ad.Language)
	}
}

func TestDecodeEnriched_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"missing duration", `{"ad_id":"a","ad_text":"x","country":"US","media_type":"none"}`, ErrMissingDuration},
		{"negative duration", `{"ad_id":"a","ad_text":"x","country":"US","duration_hours":-1,"media_type":"none"}`, ErrNegativeDuration},
		{"missing media_type", `{"ad_id":"a","ad_text":"x","country":"US","duration_hours":1}`, ErrMissingMediaType},
		{"missing base field", `{"ad_text":"x","country":"US","duration_hours":1,"media_type":"none"}`, ErrMissingAdID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEnriched([]byte(tt.line))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeEnriched error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
