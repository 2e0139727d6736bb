package enricher

import (
	"testing"

	"adpipe/internal/models"
)

// stubDetector returns a fixed result for deterministic tests.
type stubDetector struct {
	code string
	err  error
}

func (d stubDetector) Detect(text string) (string, error) {
	return d.code, d.err
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		detector Detector
		text     string
		want     string
	}{
		{"detection succeeds", stubDetector{code: "en"}, "Hello world", "en"},
		{"detection fails maps to unknown", stubDetector{err: ErrUndetermined}, "12345", models.LanguageUnknown},
		{"empty text skips detection", stubDetector{code: "en"}, "", models.LanguageUnknown},
		{"whitespace-only text skips detection", stubDetector{code: "en"}, "   \t\n", models.LanguageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectLanguage(tt.detector, tt.text)
			if got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWhatlangDetector_English(t *testing.T) {
	d := WhatlangDetector{}

	code, err := d.Detect("Become better every day with daily micro lessons that improve your focus and learning habits.")
	if err != nil {
		t.Fatalf("Detect returned unexpected error: %v", err)
	}

	if code != "en" {
		t.Errorf("Detect = %q, want en", code)
	}
}

// The detector contract: for any input the wrapper returns a string, never
// panics and never surfaces an error.
func TestDetectLanguage_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"12345",
		"!!! ??? ***",
		"a",
		"Привіт світ",
	}

	for _, input := range inputs {
		got := DetectLanguage(WhatlangDetector{}, input)
		if got == "" {
			t.Errorf("DetectLanguage(%q) returned empty string", input)
		}
	}
}
