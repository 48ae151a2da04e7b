// Package service owns the stream lifecycle and the attendee join state
// machine. Every mutation commits locally first; provider synchronization is
// queued afterwards and must never fail a command.
package service

import (
	"context"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
)

type Service struct {
	repository   DBRepo
	memberClient MemberClient
	syncQueue    SyncQueue
	notifier     Notifier
}

func New(repo DBRepo, memberClient MemberClient, syncQueue SyncQueue, notifier Notifier) *Service {
	return &Service{
		repository:   repo,
		memberClient: memberClient,
		syncQueue:    syncQueue,
		notifier:     notifier,
	}
}

// loadJoinableStream locks the stream row and rejects any stream that no
// longer accepts join commands.
func (s *Service) loadJoinableStream(ctx context.Context, streamID string) (*model.Stream, error) {
	stream, err := s.repository.GetStreamForUpdate(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stream: %v", err)
	}

	if stream == nil || stream.Status == model.DeletedStreamStatus {
		return nil, &model.StreamNotFoundError{StreamID: streamID}
	}

	if stream.Status == model.CanceledStreamStatus {
		return nil, &model.StreamCanceledError{StreamID: streamID}
	}

	if stream.HasEnded(time.Now()) {
		return nil, &model.StreamEndedError{StreamID: streamID}
	}

	return stream, nil
}

// loadOwnedStream locks the stream row and authorizes the caller as organizer.
func (s *Service) loadOwnedStream(ctx context.Context, streamID, callerID string) (*model.Stream, error) {
	stream, err := s.repository.GetStreamForUpdate(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stream: %v", err)
	}

	if stream == nil || stream.Status == model.DeletedStreamStatus {
		return nil, &model.StreamNotFoundError{StreamID: streamID}
	}

	if stream.OrganizerID.String() != callerID {
		return nil, &model.StreamNotCreatedByUserError{StreamID: streamID, MemberID: callerID}
	}

	return stream, nil
}

// cacheMember pulls the member profile and stores it in the members table, so
// the sync worker can resolve invite emails without calling out again.
func (s *Service) cacheMember(ctx context.Context, memberID string) error {
	memberInfo, err := s.memberClient.GetMemberByUUID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to get member info for %s: %v", memberID, err)
	}

	if err := s.repository.AddKnownMember(ctx, memberInfo); err != nil {
		return fmt.Errorf("failed to add member %s to members table: %v", memberID, err)
	}

	return nil
}

// enqueueSync hands a task to the sync queue. Queue failures are logged and
// swallowed: the local mutation already committed and stays authoritative.
func (s *Service) enqueueSync(ctx context.Context, operation model.SyncOperation, streamID string, memberIDs ...string) {
	task := model.SyncTask{
		Operation: operation,
		StreamID:  streamID,
		MemberIDs: memberIDs,
		IssuedAt:  time.Now(),
	}

	if err := s.syncQueue.Enqueue(ctx, task); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("failed to enqueue %s sync for stream %s: %v", operation, streamID, err))
	}
}

// notify is fire-and-forget: delivery is the dispatcher's problem.
func (s *Service) notify(ctx context.Context, notification model.Notification) {
	if err := s.notifier.Notify(ctx, notification); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("failed to publish %s notification for stream %s: %v", notification.Kind, notification.StreamID, err))
	}
}
