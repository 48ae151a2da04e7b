//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"time"

	"github.com/s21platform/stream-service/internal/model"
)

type DBRepo interface {
	CreateStream(ctx context.Context, stream *model.Stream) (string, error)
	GetStream(ctx context.Context, streamID string) (*model.Stream, error)
	GetStreamForUpdate(ctx context.Context, streamID string) (*model.Stream, error)
	UpdateStreamDetails(ctx context.Context, streamID, title, description string) error
	RescheduleStream(ctx context.Context, streamID string, start, end time.Time, timezone string) error
	SetStreamStatus(ctx context.Context, streamID string, status model.StreamStatus) error
	SetStreamVisibility(ctx context.Context, streamID string, visibility model.StreamVisibility) error
	AddAttendeeCount(ctx context.Context, streamID string, delta int64) error
	AddSpeakerCount(ctx context.Context, streamID string, delta int64) error

	CreateAttendee(ctx context.Context, attendee *model.StreamAttendee) (string, error)
	GetAttendee(ctx context.Context, streamID, memberID string) (*model.StreamAttendee, error)
	GetAttendeeForUpdate(ctx context.Context, streamID, memberID string) (*model.StreamAttendee, error)
	GetAttendeeByID(ctx context.Context, streamID, attendeeID string) (*model.StreamAttendee, error)
	ApproveAttendee(ctx context.Context, attendeeID string, organizerComment *string) (bool, error)
	DisapproveAttendee(ctx context.Context, attendeeID string, organizerComment *string) (bool, error)
	SetAttending(ctx context.Context, streamID, memberID string, attending bool) (bool, error)
	PromoteSpeaker(ctx context.Context, attendeeID string) (bool, error)
	DeleteAttendee(ctx context.Context, streamID, memberID string) error
	ListAttendees(ctx context.Context, streamID string) (*model.StreamAttendeeList, error)

	AddKnownMember(ctx context.Context, memberInfo *model.MemberInfo) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type MemberClient interface {
	GetMemberByUUID(ctx context.Context, memberUUID string) (*model.MemberInfo, error)
}

type SyncQueue interface {
	Enqueue(ctx context.Context, task model.SyncTask) error
}

type Notifier interface {
	Notify(ctx context.Context, notification model.Notification) error
}
