// Package sync keeps the external calendar/broadcast provider consistent with
// local stream state. Local state is the source of truth; every operation
// here is best-effort and safe to repeat.
package sync

import (
	"context"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
)

type Adapter struct {
	repository     DBRepo
	calendarClient CalendarClient
}

func NewAdapter(repo DBRepo, calendarClient CalendarClient) *Adapter {
	return &Adapter{
		repository:     repo,
		calendarClient: calendarClient,
	}
}

// Apply executes one sync task against the provider. A returned error means
// the provider call failed and the task may be reprocessed; a skip is not an
// error.
func (a *Adapter) Apply(ctx context.Context, task model.SyncTask) error {
	switch task.Operation {
	case model.CreateSyncOperation:
		return a.createExternally(ctx, task.StreamID)
	case model.RescheduleSyncOperation:
		return a.rescheduleExternally(ctx, task.StreamID)
	case model.CancelSyncOperation:
		return a.cancelExternally(ctx, task.StreamID)
	case model.DeleteSyncOperation:
		return a.deleteExternally(ctx, task.StreamID)
	case model.VisibilitySyncOperation:
		return a.updateVisibilityExternally(ctx, task.StreamID)
	case model.AttendeeAddSyncOperation:
		return a.addAttendeesExternally(ctx, task.StreamID, task.MemberIDs)
	case model.AttendeeRemoveSyncOperation:
		return a.removeAttendeesExternally(ctx, task.StreamID, task.MemberIDs)
	default:
		return fmt.Errorf("unknown sync operation: %s", task.Operation)
	}
}

// loadMirrored returns the stream when it exists and already carries an
// external reference. A missing reference is reported as skipped, not failed:
// a stream that was never mirrored is tolerated.
func (a *Adapter) loadMirrored(ctx context.Context, streamID string) (*model.Stream, error) {
	stream, err := a.repository.GetStream(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stream: %v", err)
	}

	if stream == nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("stream %s no longer exists, dropping sync task", streamID))
		return nil, nil
	}

	if stream.ExternalID == nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("stream %s has no external reference, sync skipped", streamID))
		return nil, nil
	}

	return stream, nil
}

func (a *Adapter) createExternally(ctx context.Context, streamID string) error {
	stream, err := a.repository.GetStream(ctx, streamID)
	if err != nil {
		return fmt.Errorf("failed to load stream: %v", err)
	}

	if stream == nil {
		return nil
	}

	// Reprocessing a create for an already-mirrored stream is a no-op.
	if stream.ExternalID != nil {
		return nil
	}

	externalID, streamLink, err := a.calendarClient.CreateEvent(ctx, stream)
	if err != nil {
		return fmt.Errorf("failed to create external event: %v", err)
	}

	if err := a.repository.SetStreamExternal(ctx, streamID, externalID, streamLink); err != nil {
		return fmt.Errorf("failed to store external reference: %v", err)
	}

	return nil
}

func (a *Adapter) rescheduleExternally(ctx context.Context, streamID string) error {
	stream, err := a.loadMirrored(ctx, streamID)
	if err != nil || stream == nil {
		return err
	}

	if err := a.calendarClient.RescheduleEvent(ctx, *stream.ExternalID, stream.ScheduledStart, stream.ScheduledEnd, stream.Timezone); err != nil {
		return fmt.Errorf("failed to reschedule external event: %v", err)
	}

	return nil
}

func (a *Adapter) cancelExternally(ctx context.Context, streamID string) error {
	stream, err := a.loadMirrored(ctx, streamID)
	if err != nil || stream == nil {
		return err
	}

	if err := a.calendarClient.CancelEvent(ctx, *stream.ExternalID); err != nil {
		return fmt.Errorf("failed to cancel external event: %v", err)
	}

	return nil
}

func (a *Adapter) deleteExternally(ctx context.Context, streamID string) error {
	stream, err := a.loadMirrored(ctx, streamID)
	if err != nil || stream == nil {
		return err
	}

	if err := a.calendarClient.DeleteEvent(ctx, *stream.ExternalID); err != nil {
		return fmt.Errorf("failed to delete external event: %v", err)
	}

	return nil
}

func (a *Adapter) updateVisibilityExternally(ctx context.Context, streamID string) error {
	stream, err := a.loadMirrored(ctx, streamID)
	if err != nil || stream == nil {
		return err
	}

	if err := a.calendarClient.UpdateVisibility(ctx, *stream.ExternalID, stream.Visibility); err != nil {
		return fmt.Errorf("failed to update external visibility: %v", err)
	}

	return nil
}

func (a *Adapter) addAttendeesExternally(ctx context.Context, streamID string, memberIDs []string) error {
	stream, err := a.loadMirrored(ctx, streamID)
	if err != nil || stream == nil {
		return err
	}

	emails, err := a.repository.GetMemberEmails(ctx, memberIDs)
	if err != nil {
		return fmt.Errorf("failed to resolve attendee emails: %v", err)
	}

	if len(emails) == 0 {
		return nil
	}

	if err := a.calendarClient.AddAttendees(ctx, *stream.ExternalID, emails); err != nil {
		return fmt.Errorf("failed to add external attendees: %v", err)
	}

	return nil
}

func (a *Adapter) removeAttendeesExternally(ctx context.Context, streamID string, memberIDs []string) error {
	stream, err := a.loadMirrored(ctx, streamID)
	if err != nil || stream == nil {
		return err
	}

	emails, err := a.repository.GetMemberEmails(ctx, memberIDs)
	if err != nil {
		return fmt.Errorf("failed to resolve attendee emails: %v", err)
	}

	if len(emails) == 0 {
		return nil
	}

	if err := a.calendarClient.RemoveAttendees(ctx, *stream.ExternalID, emails); err != nil {
		return fmt.Errorf("failed to remove external attendees: %v", err)
	}

	return nil
}
