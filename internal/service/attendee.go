package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/stream-service/internal/model"
	"github.com/s21platform/stream-service/internal/pkg/policy"
	"github.com/s21platform/stream-service/internal/pkg/tx"
)

// checkNoExistingRecord maps an existing attendee record to the conflict the
// caller must see. A DISAPPROVED record blocks re-requests until the member
// leaves the stream, which clears the record.
func checkNoExistingRecord(attendee *model.StreamAttendee, streamID, memberID string) error {
	if attendee == nil {
		return nil
	}

	switch attendee.RequestToJoinStatus {
	case model.PendingRequestStatus:
		return &model.AlreadyRequestedError{StreamID: streamID, MemberID: memberID}
	case model.ApprovedRequestStatus:
		return &model.AlreadyApprovedError{StreamID: streamID, MemberID: memberID}
	case model.DisapprovedRequestStatus:
		return &model.JoinDisapprovedError{StreamID: streamID, MemberID: memberID}
	}

	return nil
}

// RequestToJoin creates a PENDING record for a stream that requires organizer
// approval and notifies the organizer.
func (s *Service) RequestToJoin(ctx context.Context, streamID, memberID string, comment *string) (*model.StreamAttendee, error) {
	var (
		attendee    *model.StreamAttendee
		organizerID string
	)

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.loadJoinableStream(ctx, streamID)
		if err != nil {
			return err
		}
		organizerID = stream.OrganizerID.String()

		existing, err := s.repository.GetAttendeeForUpdate(ctx, streamID, memberID)
		if err != nil {
			return fmt.Errorf("failed to load attendee: %v", err)
		}

		if err := checkNoExistingRecord(existing, streamID, memberID); err != nil {
			return err
		}

		if err := s.cacheMember(ctx, memberID); err != nil {
			return err
		}

		attendee = &model.StreamAttendee{
			StreamID:            stream.ID,
			MemberID:            uuid.MustParse(memberID),
			RequestToJoinStatus: model.PendingRequestStatus,
			AttendeeComment:     comment,
		}

		attendeeID, err := s.repository.CreateAttendee(ctx, attendee)
		if err != nil {
			return fmt.Errorf("failed to create attendee: %v", err)
		}
		attendee.ID = uuid.MustParse(attendeeID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, model.Notification{
		Kind:        model.JoinRequestedNotification,
		StreamID:    streamID,
		RecipientID: organizerID,
		ActorID:     memberID,
	})

	return attendee, nil
}

// JoinPublicStream joins a PUBLIC stream directly: the record is created
// APPROVED and attending, and the audience counter moves by one.
func (s *Service) JoinPublicStream(ctx context.Context, streamID, memberID string) (*model.StreamAttendee, error) {
	var attendee *model.StreamAttendee

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.loadJoinableStream(ctx, streamID)
		if err != nil {
			return err
		}

		if !policy.CanSelfJoin(stream.Visibility) {
			return &model.CannotJoinPrivateStreamError{StreamID: streamID}
		}

		existing, err := s.repository.GetAttendeeForUpdate(ctx, streamID, memberID)
		if err != nil {
			return fmt.Errorf("failed to load attendee: %v", err)
		}

		if err := checkNoExistingRecord(existing, streamID, memberID); err != nil {
			return err
		}

		if err := s.cacheMember(ctx, memberID); err != nil {
			return err
		}

		attendee = &model.StreamAttendee{
			StreamID:            stream.ID,
			MemberID:            uuid.MustParse(memberID),
			RequestToJoinStatus: model.ApprovedRequestStatus,
			Attending:           true,
		}

		attendeeID, err := s.repository.CreateAttendee(ctx, attendee)
		if err != nil {
			return fmt.Errorf("failed to create attendee: %v", err)
		}
		attendee.ID = uuid.MustParse(attendeeID)

		if err := s.repository.AddAttendeeCount(ctx, streamID, 1); err != nil {
			return fmt.Errorf("failed to increment attendee count: %v", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.enqueueSync(ctx, model.AttendeeAddSyncOperation, streamID, memberID)

	return attendee, nil
}

// ProcessApproval lets the organizer approve or disapprove a pending request.
// The conditional repository updates make reprocessing idempotent: the
// counter moves at most once per effective transition.
func (s *Service) ProcessApproval(ctx context.Context, streamID, attendeeID, callerID string, decision model.RequestToJoinStatus, organizerComment *string) (*model.StreamAttendee, error) {
	var (
		attendee *model.StreamAttendee
		changed  bool
	)

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.loadJoinableStream(ctx, streamID)
		if err != nil {
			return err
		}

		if stream.OrganizerID.String() != callerID {
			return &model.StreamNotCreatedByUserError{StreamID: streamID, MemberID: callerID}
		}

		attendee, err = s.repository.GetAttendeeByID(ctx, streamID, attendeeID)
		if err != nil {
			return fmt.Errorf("failed to load attendee: %v", err)
		}

		if attendee == nil {
			return &model.AttendeeNotFoundError{StreamID: streamID, AttendeeID: attendeeID}
		}

		switch decision {
		case model.ApprovedRequestStatus:
			changed, err = s.repository.ApproveAttendee(ctx, attendeeID, organizerComment)
			if err != nil {
				return fmt.Errorf("failed to approve attendee: %v", err)
			}
			// Approval flips attending false->true, so the counter
			// moves only on an effective transition.
			if changed {
				if err := s.repository.AddAttendeeCount(ctx, streamID, 1); err != nil {
					return fmt.Errorf("failed to increment attendee count: %v", err)
				}
			}
		case model.DisapprovedRequestStatus:
			changed, err = s.repository.DisapproveAttendee(ctx, attendeeID, organizerComment)
			if err != nil {
				return fmt.Errorf("failed to disapprove attendee: %v", err)
			}
			if changed && attendee.Attending {
				if err := s.repository.AddAttendeeCount(ctx, streamID, -1); err != nil {
					return fmt.Errorf("failed to decrement attendee count: %v", err)
				}
			}
		default:
			return fmt.Errorf("unsupported approval decision: %s", decision)
		}

		attendee, err = s.repository.GetAttendeeByID(ctx, streamID, attendeeID)
		if err != nil {
			return fmt.Errorf("failed to reload attendee: %v", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		memberID := attendee.MemberID.String()
		switch decision {
		case model.ApprovedRequestStatus:
			s.enqueueSync(ctx, model.AttendeeAddSyncOperation, streamID, memberID)
			s.notify(ctx, model.Notification{
				Kind:        model.JoinApprovedNotification,
				StreamID:    streamID,
				RecipientID: memberID,
				ActorID:     callerID,
			})
		case model.DisapprovedRequestStatus:
			s.notify(ctx, model.Notification{
				Kind:        model.JoinDisapprovedNotification,
				StreamID:    streamID,
				RecipientID: memberID,
				ActorID:     callerID,
			})
		}
	}

	return attendee, nil
}

// SetAttendance flips the attending flag of an approved record without
// touching join-status history. The counter follows effective flips only.
func (s *Service) SetAttendance(ctx context.Context, streamID, memberID string, attending bool) error {
	var changed bool

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		if _, err := s.loadJoinableStream(ctx, streamID); err != nil {
			return err
		}

		existing, err := s.repository.GetAttendeeForUpdate(ctx, streamID, memberID)
		if err != nil {
			return fmt.Errorf("failed to load attendee: %v", err)
		}

		if existing == nil {
			return &model.AttendeeNotFoundError{StreamID: streamID, AttendeeID: memberID}
		}

		changed, err = s.repository.SetAttending(ctx, streamID, memberID, attending)
		if err != nil {
			return fmt.Errorf("failed to set attendance: %v", err)
		}

		if changed {
			delta := int64(-1)
			if attending {
				delta = 1
			}
			if err := s.repository.AddAttendeeCount(ctx, streamID, delta); err != nil {
				return fmt.Errorf("failed to adjust attendee count: %v", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if changed && attending {
		s.enqueueSync(ctx, model.AttendeeAddSyncOperation, streamID, memberID)
	}
	if changed && !attending {
		s.enqueueSync(ctx, model.AttendeeRemoveSyncOperation, streamID, memberID)
	}

	return nil
}

// LeaveStream removes the member's record entirely, which is also the only
// way to clear a DISAPPROVED record before re-requesting.
func (s *Service) LeaveStream(ctx context.Context, streamID, memberID string) error {
	var wasCounted bool

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.repository.GetStreamForUpdate(ctx, streamID)
		if err != nil {
			return fmt.Errorf("failed to load stream: %v", err)
		}

		if stream == nil || stream.Status == model.DeletedStreamStatus {
			return &model.StreamNotFoundError{StreamID: streamID}
		}

		if stream.OrganizerID.String() == memberID {
			return &model.OrganizerCannotLeaveError{StreamID: streamID, MemberID: memberID}
		}

		existing, err := s.repository.GetAttendeeForUpdate(ctx, streamID, memberID)
		if err != nil {
			return fmt.Errorf("failed to load attendee: %v", err)
		}

		if existing == nil {
			return &model.AttendeeNotFoundError{StreamID: streamID, AttendeeID: memberID}
		}

		if err := s.repository.DeleteAttendee(ctx, streamID, memberID); err != nil {
			return fmt.Errorf("failed to delete attendee: %v", err)
		}

		wasCounted = existing.Attending
		if wasCounted {
			if err := s.repository.AddAttendeeCount(ctx, streamID, -1); err != nil {
				return fmt.Errorf("failed to decrement attendee count: %v", err)
			}
		}

		if existing.IsASpeaker {
			if err := s.repository.AddSpeakerCount(ctx, streamID, -1); err != nil {
				return fmt.Errorf("failed to decrement speaker count: %v", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if wasCounted {
		s.enqueueSync(ctx, model.AttendeeRemoveSyncOperation, streamID, memberID)
	}

	return nil
}

// PromoteSpeaker marks an attendee as a speaker, organizer-only.
func (s *Service) PromoteSpeaker(ctx context.Context, streamID, attendeeID, callerID string) error {
	return tx.TxExecute(ctx, func(ctx context.Context) error {
		stream, err := s.loadOwnedStream(ctx, streamID, callerID)
		if err != nil {
			return err
		}

		attendee, err := s.repository.GetAttendeeByID(ctx, stream.ID.String(), attendeeID)
		if err != nil {
			return fmt.Errorf("failed to load attendee: %v", err)
		}

		if attendee == nil {
			return &model.AttendeeNotFoundError{StreamID: streamID, AttendeeID: attendeeID}
		}

		changed, err := s.repository.PromoteSpeaker(ctx, attendeeID)
		if err != nil {
			return fmt.Errorf("failed to promote speaker: %v", err)
		}

		if changed {
			if err := s.repository.AddSpeakerCount(ctx, streamID, 1); err != nil {
				return fmt.Errorf("failed to increment speaker count: %v", err)
			}
		}

		return nil
	})
}
