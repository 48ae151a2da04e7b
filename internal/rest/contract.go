//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/s21platform/stream-service/internal/api"
	"github.com/s21platform/stream-service/internal/model"
)

type StreamService interface {
	CreateStream(ctx context.Context, organizerID string, stream *model.Stream) (*model.Stream, error)
	GetStream(ctx context.Context, streamID, viewerID string) (*model.Stream, model.JoinStatus, error)
	UpdateStream(ctx context.Context, streamID, callerID, title, description string) error
	RescheduleStream(ctx context.Context, streamID, callerID string, start, end time.Time, timezone string) error
	CancelStream(ctx context.Context, streamID, callerID string) error
	DeleteStream(ctx context.Context, streamID, callerID string) error
	UpdateVisibility(ctx context.Context, streamID, callerID string, visibility model.StreamVisibility) error

	RequestToJoin(ctx context.Context, streamID, memberID string, comment *string) (*model.StreamAttendee, error)
	JoinPublicStream(ctx context.Context, streamID, memberID string) (*model.StreamAttendee, error)
	ProcessApproval(ctx context.Context, streamID, attendeeID, callerID string, decision model.RequestToJoinStatus, organizerComment *string) (*model.StreamAttendee, error)
	SetAttendance(ctx context.Context, streamID, memberID string, attending bool) error
	LeaveStream(ctx context.Context, streamID, memberID string) error
	PromoteSpeaker(ctx context.Context, streamID, attendeeID, callerID string) error
	ListAttendees(ctx context.Context, streamID, callerID string) (*model.StreamAttendeeList, error)
}

type Validator interface {
	ValidateCreateStream(req *api.CreateStreamRequest) error
	ValidateRescheduleStream(req *api.RescheduleStreamRequest) error
	ValidateUpdateVisibility(req *api.UpdateVisibilityRequest) error
	ValidateProcessApproval(req *api.ProcessApprovalRequest) error
}

type JWTGenerator interface {
	GenerateStreamAccessToken(memberID, streamID string) (string, int64, error)
}
