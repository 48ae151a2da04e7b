package model

import (
	"time"

	"github.com/google/uuid"
)

type StreamVisibility string

const (
	PublicVisibility    StreamVisibility = "PUBLIC"
	PrivateVisibility   StreamVisibility = "PRIVATE"
	ProtectedVisibility StreamVisibility = "PROTECTED"
)

type StreamStatus string

const (
	ActiveStreamStatus   StreamStatus = "ACTIVE"
	CanceledStreamStatus StreamStatus = "CANCELED"
	DeletedStreamStatus  StreamStatus = "DELETED"
)

type StreamSource string

const (
	GoogleMeetSource  StreamSource = "GOOGLE_MEET"
	YouTubeLiveSource StreamSource = "YOUTUBE_LIVE"
)

type StreamList []Stream

type Stream struct {
	ID             uuid.UUID        `db:"id"`
	Title          string           `db:"title"`
	Description    string           `db:"description"`
	ScheduledStart time.Time        `db:"scheduled_start"`
	ScheduledEnd   time.Time        `db:"scheduled_end"`
	Timezone       string           `db:"timezone"`
	Visibility     StreamVisibility `db:"visibility"`
	Status         StreamStatus     `db:"status"`
	Source         StreamSource     `db:"source"`
	ExternalID     *string          `db:"external_id"`
	StreamLink     *string          `db:"stream_link"`
	OrganizerID    uuid.UUID        `db:"organizer_id"`
	TotalAttendees int64            `db:"total_attendees"`
	TotalSpeakers  int64            `db:"total_speakers"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      *time.Time       `db:"updated_at"`
}

// HasEnded reports whether the stream's scheduled window is fully in the past.
func (s *Stream) HasEnded(now time.Time) bool {
	return s.ScheduledEnd.Before(now)
}

// IsOngoing reports whether now falls inside the scheduled window.
func (s *Stream) IsOngoing(now time.Time) bool {
	return !now.Before(s.ScheduledStart) && !now.After(s.ScheduledEnd)
}
