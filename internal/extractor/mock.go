package extractor

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"adpipe/internal/models"
)

// Content templates for generating realistic mock ads.
var (
	adTitles = []string{
		"Boost your microlearning today!",
		"Master a new skill in 5 minutes",
		"Learn smarter, not harder",
		"Microlearning for busy people",
		"Upgrade your brain",
	}

	adBodies = []string{
		"This ad teaches you microlearning techniques.",
		"Daily micro lessons to improve focus.",
		"Become better every day with microlearning.",
		"Microlearning is the future of education.",
		"Quick tips, big impact with microlearning.",
	}

	mediaCombinations = [][]string{
		{"image"},
		{"video"},
		{"image", "video"},
		{},
	}
)

// MockSource generates synthetic ads that mimic the structure of real
// ads-archive API responses.
type MockSource struct{}

// NewMockSource creates a new mock source.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// Fetch generates count raw ads with randomized content, timing and
// performance metrics, all sharing one ingestion timestamp.
func (s *MockSource) Fetch(count int) ([]models.RawAd, error) {
	baseTime := time.Now().UTC()
	ingestionTime := baseTime.Format(time.RFC3339)

	ads := make([]models.RawAd, 0, count)

	for i := 0; i < count; i++ {
		payload, err := json.Marshal(mockAdPayload(i, baseTime))
		if err != nil {
			return nil, fmt.Errorf("failed to serialize mock ad %d: %w", i, err)
		}

		ads = append(ads, models.RawAd{
			Source:        models.SourceMock,
			IngestionTime: ingestionTime,
			RawData:       payload,
		})
	}

	return ads, nil
}

// mockAdPayload builds one synthetic payload in the mock source's native
// field layout.
func mockAdPayload(index int, baseTime time.Time) map[string]any {
	startTime := baseTime.AddDate(0, 0, -(1 + rand.Intn(30)))
	stopTime := startTime.AddDate(0, 0, 1+rand.Intn(5))

	durationMinutes := 30 + rand.Intn(571)
	hours := durationMinutes / 60
	minutes := durationMinutes % 60

	return map[string]any{
		"ad_id":                  fmt.Sprintf("mock_%d", index),
		"page_id":                fmt.Sprintf("page_%d", 1000+index),
		"page_name":              fmt.Sprintf("Mock Page %d", index),
		"ad_creative_body":       adBodies[rand.Intn(len(adBodies))],
		"ad_creative_link_title": adTitles[rand.Intn(len(adTitles))],
		"ad_delivery_start_time": startTime.Format(time.RFC3339),
		"ad_delivery_stop_time":  stopTime.Format(time.RFC3339),
		"ad_snapshot_url":        fmt.Sprintf("https://facebook.com/ads/snapshot/mock_%d", index),
		"currency":               "USD",
		"spend":                  5 + rand.Float64()*495,
		"impressions":            1000 + rand.Intn(49001),
		"ad_reached_countries":   []string{"US"},
		"ad_text":                fmt.Sprintf("This is a test ad #%d with great features and microlearning tricks", index),
		"active":                 fmt.Sprintf("Active for %d hrs %d mins", hours, minutes),
		"media":                  mediaCombinations[rand.Intn(len(mediaCombinations))],
		"country":                "US",
	}
}
