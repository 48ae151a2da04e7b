package model

import (
	"time"

	"github.com/google/uuid"
)

type RequestToJoinStatus string

const (
	PendingRequestStatus     RequestToJoinStatus = "PENDING"
	ApprovedRequestStatus    RequestToJoinStatus = "APPROVED"
	DisapprovedRequestStatus RequestToJoinStatus = "DISAPPROVED"
)

// JoinStatus is the display status derived from visibility, the persisted
// request status and timing. It is never stored.
type JoinStatus string

const (
	NotJoinedPrivateJoinStatus JoinStatus = "NOT_JOINED_PRIVATE"
	NotJoinedPublicJoinStatus  JoinStatus = "NOT_JOINED_PUBLIC"
	PendingApprovalJoinStatus  JoinStatus = "PENDING_APPROVAL"
	JoinedJoinStatus           JoinStatus = "JOINED"
	NotAttendingJoinStatus     JoinStatus = "NOT_ATTENDING"
	DisapprovedJoinStatus      JoinStatus = "DISAPPROVED"
	StreamEndedJoinStatus      JoinStatus = "STREAM_ENDED"
)

type StreamAttendeeList []StreamAttendee

type StreamAttendee struct {
	ID                  uuid.UUID           `db:"id"`
	StreamID            uuid.UUID           `db:"stream_id"`
	MemberID            uuid.UUID           `db:"member_id"`
	RequestToJoinStatus RequestToJoinStatus `db:"request_to_join_status"`
	Attending           bool                `db:"attending"`
	IsASpeaker          bool                `db:"is_a_speaker"`
	IsOrganizer         bool                `db:"is_organizer"`
	AttendeeComment     *string             `db:"attendee_comment"`
	OrganizerComment    *string             `db:"organizer_comment"`
	CreatedAt           time.Time           `db:"created_at"`
	UpdatedAt           *time.Time          `db:"updated_at"`
}

// MemberInfo is the member-service projection cached in the members table.
type MemberInfo struct {
	MemberID  string `db:"id" json:"id"`
	Nickname  string `db:"nickname" json:"nickname"`
	Email     string `db:"email" json:"email"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
}
