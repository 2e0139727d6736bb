package enricher

import "adpipe/internal/models"

// ClassifyMedia maps a list of media tags to one of four categories. The
// input is treated as a set: duplicates collapse and order is irrelevant.
// Only the literal tags "image" and "video" are recognized; anything else is
// ignored for classification.
func ClassifyMedia(media []string) string {
	if len(media) == 0 {
		return models.MediaNone
	}

	hasImage := false
	hasVideo := false

	for _, tag := range media {
		switch tag {
		case "image":
			hasImage = true
		case "video":
			hasVideo = true
		}
	}

	switch {
	case hasImage && hasVideo:
		return models.MediaBoth
	case hasImage:
		return models.MediaImageOnly
	case hasVideo:
		return models.MediaVideoOnly
	default:
		return models.MediaNone
	}
}
