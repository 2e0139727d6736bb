package enricher

import (
	"errors"
	"strings"

	"github.com/abadojack/whatlanggo"

	"adpipe/internal/models"
)

// ErrUndetermined is returned by a Detector when no language can be
// identified for the given text.
var ErrUndetermined = errors.New("language could not be determined")

// Detector identifies the language of a piece of text. Implementations
// return an ISO 639-1 code or an error when detection fails.
type Detector interface {
	Detect(text string) (string, error)
}

// WhatlangDetector detects languages using the whatlanggo trigram profiles.
type WhatlangDetector struct{}

// Detect returns the ISO 639-1 code of the most likely language.
func (WhatlangDetector) Detect(text string) (string, error) {
	info := whatlanggo.Detect(text)

	code := info.Lang.Iso6391()
	if code == "" {
		return "", ErrUndetermined
	}

	return code, nil
}

// DetectLanguage wraps a Detector with the pipeline's fallback contract:
// empty or whitespace-only text returns "unknown" without invoking
// detection, and any detection failure maps to "unknown" instead of
// propagating as an error.
func DetectLanguage(d Detector, text string) string {
	if strings.TrimSpace(text) == "" {
		return models.LanguageUnknown
	}

	code, err := d.Detect(text)
	if err != nil {
		return models.LanguageUnknown
	}

	return code
}
