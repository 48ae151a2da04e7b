//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package sync

import (
	"context"
	"time"

	"github.com/s21platform/stream-service/internal/model"
)

type DBRepo interface {
	GetStream(ctx context.Context, streamID string) (*model.Stream, error)
	SetStreamExternal(ctx context.Context, streamID, externalID, streamLink string) error
	GetMemberEmails(ctx context.Context, memberIDs []string) ([]string, error)
}

type CalendarClient interface {
	CreateEvent(ctx context.Context, stream *model.Stream) (string, string, error)
	RescheduleEvent(ctx context.Context, externalID string, start, end time.Time, timezone string) error
	CancelEvent(ctx context.Context, externalID string) error
	DeleteEvent(ctx context.Context, externalID string) error
	UpdateVisibility(ctx context.Context, externalID string, visibility model.StreamVisibility) error
	AddAttendees(ctx context.Context, externalID string, emails []string) error
	RemoveAttendees(ctx context.Context, externalID string, emails []string) error
}

type Producer interface {
	Produce(ctx context.Context, key string, value interface{}) error
}
