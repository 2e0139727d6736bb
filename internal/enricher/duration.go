// Package enricher derives analytical fields from normalized ad records:
// duration parsing, media classification and language detection.
package enricher

import (
	"math"
	"regexp"
	"strconv"
)

// The duration grammar is deliberately narrow: only "hr"/"hrs" and
// "min"/"mins" tokens are recognized, unanchored and case-insensitive.
// Spelled-out tokens ("hours", "minutes") do not match; callers needing a
// broader grammar must pre-normalize the text.
var (
	hoursPattern   = regexp.MustCompile(`(?i)(\d+)\s*hrs?`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*mins?`)
)

// ParseDuration extracts hours and minutes from free text like
// "Active for 2 hrs 30 mins" and converts them to decimal hours, rounded to
// 2 decimal places. Empty input or text without recognized tokens yields 0.
func ParseDuration(text string) float64 {
	if text == "" {
		return 0.0
	}

	hours := 0
	if m := hoursPattern.FindStringSubmatch(text); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}

	minutes := 0
	if m := minutesPattern.FindStringSubmatch(text); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}

	return math.Round((float64(hours)+float64(minutes)/60.0)*100) / 100
}
