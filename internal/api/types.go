// Package api holds the request and response bodies of the REST surface.
package api

import "time"

type Error struct {
	Error string `json:"error"`
}

type CreateStreamRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	Timezone       string    `json:"timezone"`
	Visibility     string    `json:"visibility"`
	Source         string    `json:"source"`
}

type UpdateStreamRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type RescheduleStreamRequest struct {
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	Timezone       string    `json:"timezone"`
}

type UpdateVisibilityRequest struct {
	Visibility string `json:"visibility"`
}

type RequestToJoinRequest struct {
	Comment *string `json:"comment,omitempty"`
}

type ProcessApprovalRequest struct {
	Decision         string  `json:"decision"`
	OrganizerComment *string `json:"organizer_comment,omitempty"`
}

type SetAttendanceRequest struct {
	Attending bool `json:"attending"`
}

type StreamResponse struct {
	Id             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ScheduledStart string  `json:"scheduled_start"`
	ScheduledEnd   string  `json:"scheduled_end"`
	Timezone       string  `json:"timezone"`
	Visibility     string  `json:"visibility"`
	Status         string  `json:"status"`
	Source         string  `json:"source"`
	StreamLink     *string `json:"stream_link,omitempty"`
	OrganizerId    string  `json:"organizer_id"`
	TotalAttendees int64   `json:"total_attendees"`
	TotalSpeakers  int64   `json:"total_speakers"`
	JoinStatus     string  `json:"join_status"`
}

type AttendeeResponse struct {
	Id                  string  `json:"id"`
	StreamId            string  `json:"stream_id"`
	MemberId            string  `json:"member_id"`
	RequestToJoinStatus string  `json:"request_to_join_status"`
	Attending           bool    `json:"attending"`
	IsASpeaker          bool    `json:"is_a_speaker"`
	IsOrganizer         bool    `json:"is_organizer"`
	AttendeeComment     *string `json:"attendee_comment,omitempty"`
	OrganizerComment    *string `json:"organizer_comment,omitempty"`
}

type ListAttendeesResponse struct {
	Attendees []AttendeeResponse `json:"attendees"`
}

type GetStreamAccessTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
