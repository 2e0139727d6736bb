package ranker

import (
	"fmt"
	"math"
	"testing"

	"adpipe/internal/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		ad   models.EnrichedAd
		want float64
	}{
		{"video-only boost", models.EnrichedAd{DurationHours: 3.0, MediaType: models.MediaVideoOnly}, 3.3},
		{"image-only base", models.EnrichedAd{DurationHours: 2.0, MediaType: models.MediaImageOnly}, 2.0},
		{"both highest", models.EnrichedAd{DurationHours: 1.5, MediaType: models.MediaBoth}, 1.8},
		{"none penalized", models.EnrichedAd{DurationHours: 2.0, MediaType: models.MediaNone}, 1.0},
		{"unrecognized media type defaults to 1.0", models.EnrichedAd{DurationHours: 2.0, MediaType: "carousel"}, 2.0},
		{"zero value ad", models.EnrichedAd{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.ad)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopAds_Ordering(t *testing.T) {
	ads := []models.EnrichedAd{
		{AdID: "a", DurationHours: 2.0, MediaType: models.MediaImageOnly}, // 2.0
		{AdID: "b", DurationHours: 3.0, MediaType: models.MediaVideoOnly}, // 3.3
		{AdID: "c", DurationHours: 1.0, MediaType: models.MediaBoth},      // 1.2
	}

	top := TopAds(ads)
	if len(top) != 3 {
		t.Fatalf("Expected 3 ads, got %d", len(top))
	}

	wantOrder := []string{"b", "a", "c"}
	for i, want := range wantOrder {
		if top[i].AdID != want {
			t.Errorf("top[%d].AdID = %q, want %q", i, top[i].AdID, want)
		}
	}
}

func TestTopAds_TruncatesToTopN(t *testing.T) {
	var ads []models.EnrichedAd
	for i := 0; i < 25; i++ {
		ads = append(ads, models.EnrichedAd{
			AdID:          fmt.Sprintf("ad_%02d", i),
			DurationHours: float64(i),
			MediaType:     models.MediaImageOnly,
		})
	}

	top := TopAds(ads)
	if len(top) != TopN {
		t.Fatalf("Expected %d ads, got %d", TopN, len(top))
	}

	// Highest duration wins
	if top[0].AdID != "ad_24" {
		t.Errorf("top[0].AdID = %q, want ad_24", top[0].AdID)
	}

	for i := 1; i < len(top); i++ {
		if Score(top[i]) > Score(top[i-1]) {
			t.Errorf("Scores not non-increasing at index %d", i)
		}
	}
}

func TestTopAds_Empty(t *testing.T) {
	if got := TopAds(nil); len(got) != 0 {
		t.Errorf("TopAds(nil) = %v, want empty", got)
	}

	if got := TopAds([]models.EnrichedAd{}); len(got) != 0 {
		t.Errorf("TopAds([]) = %v, want empty", got)
	}
}

// Equal scores order deterministically by ad id, so identical inputs always
// produce identical output regardless of insertion order.
func TestTopAds_TieBreakByAdID(t *testing.T) {
	ads := []models.EnrichedAd{
		{AdID: "z", DurationHours: 1.0, MediaType: models.MediaImageOnly},
		{AdID: "a", DurationHours: 1.0, MediaType: models.MediaImageOnly},
		{AdID: "m", DurationHours: 1.0, MediaType: models.MediaImageOnly},
	}

	top := TopAds(ads)

	wantOrder := []string{"a", "m", "z"}
	for i, want := range wantOrder {
		if top[i].AdID != want {
			t.Errorf("top[%d].AdID = %q, want %q", i, top[i].AdID, want)
		}
	}
}

func TestTopAds_DoesNotMutateInput(t *testing.T) {
	ads := []models.EnrichedAd{
		{AdID: "low", DurationHours: 1.0, MediaType: models.MediaImageOnly},
		{AdID: "high", DurationHours: 9.0, MediaType: models.MediaImageOnly},
	}

	TopAds(ads)

	if ads[0].AdID != "low" || ads[1].AdID != "high" {
		t.Error("TopAds mutated its input slice")
	}
}
