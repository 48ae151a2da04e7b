package model

import "time"

type SyncOperation string

const (
	CreateSyncOperation         SyncOperation = "create"
	RescheduleSyncOperation     SyncOperation = "reschedule"
	CancelSyncOperation         SyncOperation = "cancel"
	DeleteSyncOperation         SyncOperation = "delete"
	VisibilitySyncOperation     SyncOperation = "visibility"
	AttendeeAddSyncOperation    SyncOperation = "attendee_add"
	AttendeeRemoveSyncOperation SyncOperation = "attendee_remove"
)

// SyncTask is the unit queued for the calendar sync worker. Tasks are keyed
// by StreamID so all mutations of one stream land on the same partition.
type SyncTask struct {
	Operation SyncOperation `json:"operation"`
	StreamID  string        `json:"stream_id"`
	MemberIDs []string      `json:"member_ids,omitempty"`
	IssuedAt  time.Time     `json:"issued_at"`
}

type NotificationKind string

const (
	JoinRequestedNotification   NotificationKind = "join_requested"
	JoinApprovedNotification    NotificationKind = "join_approved"
	JoinDisapprovedNotification NotificationKind = "join_disapproved"
	StreamCanceledNotification  NotificationKind = "stream_canceled"
)

// Notification is a fire-and-forget event for the notification dispatcher.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	StreamID    string           `json:"stream_id"`
	RecipientID string           `json:"recipient_id"`
	ActorID     string           `json:"actor_id,omitempty"`
}
