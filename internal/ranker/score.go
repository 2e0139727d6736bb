// Package ranker scores enriched ads and selects the top-N leaderboard.
package ranker

import (
	"sort"

	"adpipe/internal/models"
)

// TopN bounds the leaderboard size.
const TopN = 10

// mediaMultipliers weights the score by media richness. Unrecognized media
// types fall back to 1.0.
var mediaMultipliers = map[string]float64{
	models.MediaBoth:      1.2,
	models.MediaVideoOnly: 1.1,
	models.MediaImageOnly: 1.0,
	models.MediaNone:      0.5,
}

// Score computes the ordering metric for one enriched ad:
// duration_hours × multiplier(media_type).
func Score(ad models.EnrichedAd) float64 {
	multiplier, ok := mediaMultipliers[ad.MediaType]
	if !ok {
		multiplier = 1.0
	}

	return ad.DurationHours * multiplier
}

// TopAds returns at most TopN ads sorted by score in descending order.
// Equal scores order by ad id ascending so that identical inputs always
// produce identical output.
func TopAds(ads []models.EnrichedAd) []models.EnrichedAd {
	ranked := make([]models.EnrichedAd, len(ads))
	copy(ranked, ads)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := Score(ranked[i]), Score(ranked[j])
		if si != sj {
			return si > sj
		}

		return ranked[i].AdID < ranked[j].AdID
	})

	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}

	return ranked
}
