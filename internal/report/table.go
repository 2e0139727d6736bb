// Package report renders the leaderboard summary for terminal output.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"adpipe/internal/models"
	"adpipe/internal/ranker"
)

const maxTextWidth = 40

// RenderTopAds renders the ranked ads as an aligned text table. Cell widths
// are computed with rune display widths so CJK ad text keeps columns
// aligned.
func RenderTopAds(ads []models.EnrichedAd) string {
	if len(ads) == 0 {
		return "No ads to report.\n"
	}

	rows := [][]string{
		{"#", "AD ID", "SCORE", "HOURS", "MEDIA", "LANG", "TEXT"},
	}

	for i, ad := range ads {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ad.AdID,
			fmt.Sprintf("%.2f", ranker.Score(ad)),
			fmt.Sprintf("%.2f", ad.DurationHours),
			ad.MediaType,
			ad.Language,
			runewidth.Truncate(ad.AdText, maxTextWidth, "..."),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for col, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[col] {
				widths[col] = w
			}
		}
	}

	var b strings.Builder

	for i, row := range rows {
		for col, cell := range row {
			b.WriteString(runewidth.FillRight(cell, widths[col]))

			if col < len(row)-1 {
				b.WriteString("  ")
			}
		}

		b.WriteString("\n")

		if i == 0 {
			for col, w := range widths {
				b.WriteString(strings.Repeat("-", w))

				if col < len(widths)-1 {
					b.WriteString("  ")
				}
			}

			b.WriteString("\n")
		}
	}

	return b.String()
}
