// Package streamlink hides join links from members who are not joined yet.
// Masking is source-specific: each provider keeps a recognizable placeholder.
package streamlink

import "github.com/s21platform/stream-service/internal/model"

type Masker interface {
	MaskLink(link string) string
}

// ForSource picks the masker for the stream's provider.
func ForSource(source model.StreamSource) Masker {
	switch source {
	case model.GoogleMeetSource:
		return googleMeetMasker{}
	case model.YouTubeLiveSource:
		return youtubeLiveMasker{}
	default:
		return genericMasker{}
	}
}

type googleMeetMasker struct{}

func (googleMeetMasker) MaskLink(link string) string {
	if link == "" {
		return ""
	}
	return "https://meet.google.com/***"
}

type youtubeLiveMasker struct{}

func (youtubeLiveMasker) MaskLink(link string) string {
	if link == "" {
		return ""
	}
	return "https://youtube.com/live/***"
}

type genericMasker struct{}

func (genericMasker) MaskLink(link string) string {
	if link == "" {
		return ""
	}
	return "***"
}
