package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/stream-service/internal/model"
	"github.com/s21platform/stream-service/internal/pkg/policy"
	"github.com/s21platform/stream-service/internal/pkg/tx"
)

// CreateStream persists the stream together with its organizer attendee row.
// The organizer row is the only one ever created with is_organizer and it is
// not counted as audience, so total_attendees starts at zero.
func (s *Service) CreateStream(ctx context.Context, organizerID string, stream *model.Stream) (*model.Stream, error) {
	var created *model.Stream

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		if err := s.cacheMember(ctx, organizerID); err != nil {
			return err
		}

		stream.OrganizerID = uuid.MustParse(organizerID)
		stream.Status = model.ActiveStreamStatus

		streamID, err := s.repository.CreateStream(ctx, stream)
		if err != nil {
			return fmt.Errorf("failed to create stream: %v", err)
		}

		_, err = s.repository.CreateAttendee(ctx, &model.StreamAttendee{
			StreamID:            uuid.MustParse(streamID),
			MemberID:            stream.OrganizerID,
			RequestToJoinStatus: model.ApprovedRequestStatus,
			Attending:           false,
			IsOrganizer:         true,
		})
		if err != nil {
			return fmt.Errorf("failed to create organizer attendee: %v", err)
		}

		created, err = s.repository.GetStream(ctx, streamID)
		if err != nil {
			return fmt.Errorf("failed to reload stream: %v", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.enqueueSync(ctx, model.CreateSyncOperation, created.ID.String())

	return created, nil
}

// GetStream returns the stream with the viewer's display join status.
func (s *Service) GetStream(ctx context.Context, streamID, viewerID string) (*model.Stream, model.JoinStatus, error) {
	stream, err := s.repository.GetStream(ctx, streamID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load stream: %v", err)
	}

	if stream == nil || stream.Status == model.DeletedStreamStatus {
		return nil, "", &model.StreamNotFoundError{StreamID: streamID}
	}

	attendee, err := s.repository.GetAttendee(ctx, streamID, viewerID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load attendee: %v", err)
	}

	joinStatus := policy.Decide(stream.Visibility, attendee, stream.HasEnded(time.Now()))

	return stream, joinStatus, nil
}

func (s *Service) UpdateStream(ctx context.Context, streamID, callerID, title, description string) error {
	return tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.loadOwnedStream(ctx, streamID, callerID)
		if err != nil {
			return err
		}

		if stream.Status == model.CanceledStreamStatus {
			return &model.StreamAlreadyCanceledError{StreamID: streamID}
		}

		if stream.HasEnded(time.Now()) {
			return &model.StreamAlreadyHappenedError{StreamID: streamID}
		}

		if err := s.repository.UpdateStreamDetails(ctx, streamID, title, description); err != nil {
			return fmt.Errorf("failed to update stream: %v", err)
		}

		return nil
	})
}

func (s *Service) RescheduleStream(ctx context.Context, streamID, callerID string, start, end time.Time, timezone string) error {
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.loadOwnedStream(ctx, streamID, callerID)
		if err != nil {
			return err
		}

		if stream.Status == model.CanceledStreamStatus {
			return &model.StreamAlreadyCanceledError{StreamID: streamID}
		}

		if stream.HasEnded(time.Now()) {
			return &model.StreamAlreadyHappenedError{StreamID: streamID}
		}

		if err := s.repository.RescheduleStream(ctx, streamID, start, end, timezone); err != nil {
			return fmt.Errorf("failed to reschedule stream: %v", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.enqueueSync(ctx, model.RescheduleSyncOperation, streamID)

	return nil
}

func (s *Service) CancelStream(ctx context.Context, streamID, callerID string) error {
	var attendees model.StreamAttendeeList

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.loadOwnedStream(ctx, streamID, callerID)
		if err != nil {
			return err
		}

		if stream.Status == model.CanceledStreamStatus {
			return &model.StreamAlreadyCanceledError{StreamID: streamID}
		}

		if stream.IsOngoing(time.Now()) {
			return &model.CannotCancelOrDeleteOngoingStreamError{StreamID: streamID}
		}

		if err := s.repository.SetStreamStatus(ctx, streamID, model.CanceledStreamStatus); err != nil {
			return fmt.Errorf("failed to cancel stream: %v", err)
		}

		list, err := s.repository.ListAttendees(ctx, streamID)
		if err != nil {
			return fmt.Errorf("failed to list attendees: %v", err)
		}
		attendees = *list

		return nil
	})
	if err != nil {
		return err
	}

	s.enqueueSync(ctx, model.CancelSyncOperation, streamID)

	for _, attendee := range attendees {
		if attendee.IsOrganizer {
			continue
		}
		s.notify(ctx, model.Notification{
			Kind:        model.StreamCanceledNotification,
			StreamID:    streamID,
			RecipientID: attendee.MemberID.String(),
			ActorID:     callerID,
		})
	}

	return nil
}

// DeleteStream is a soft delete: the row stays while attendee records
// reference it, only the status flips.
func (s *Service) DeleteStream(ctx context.Context, streamID, callerID string) error {
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.loadOwnedStream(ctx, streamID, callerID)
		if err != nil {
			return err
		}

		if stream.IsOngoing(time.Now()) {
			return &model.CannotCancelOrDeleteOngoingStreamError{StreamID: streamID}
		}

		if err := s.repository.SetStreamStatus(ctx, streamID, model.DeletedStreamStatus); err != nil {
			return fmt.Errorf("failed to delete stream: %v", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.enqueueSync(ctx, model.DeleteSyncOperation, streamID)

	return nil
}

func (s *Service) UpdateVisibility(ctx context.Context, streamID, callerID string, visibility model.StreamVisibility) error {
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.loadOwnedStream(ctx, streamID, callerID)
		if err != nil {
			return err
		}

		if stream.Status == model.CanceledStreamStatus {
			return &model.StreamAlreadyCanceledError{StreamID: streamID}
		}

		if stream.HasEnded(time.Now()) {
			return &model.StreamAlreadyHappenedError{StreamID: streamID}
		}

		if err := s.repository.SetStreamVisibility(ctx, streamID, visibility); err != nil {
			return fmt.Errorf("failed to update visibility: %v", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.enqueueSync(ctx, model.VisibilitySyncOperation, streamID)

	return nil
}

// ListAttendees is organizer-only, pending requests first.
func (s *Service) ListAttendees(ctx context.Context, streamID, callerID string) (*model.StreamAttendeeList, error) {
	stream, err := s.repository.GetStream(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stream: %v", err)
	}

	if stream == nil || stream.Status == model.DeletedStreamStatus {
		return nil, &model.StreamNotFoundError{StreamID: streamID}
	}

	if stream.OrganizerID.String() != callerID {
		return nil, &model.StreamNotCreatedByUserError{StreamID: streamID, MemberID: callerID}
	}

	return s.repository.ListAttendees(ctx, streamID)
}
