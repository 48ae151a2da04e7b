package model

import "fmt"

type StreamNotFoundError struct {
	StreamID string
}

func (e *StreamNotFoundError) Error() string {
	return fmt.Sprintf("stream %s not found", e.StreamID)
}

type AttendeeNotFoundError struct {
	StreamID   string
	AttendeeID string
}

func (e *AttendeeNotFoundError) Error() string {
	return fmt.Sprintf("attendee %s not found in stream %s", e.AttendeeID, e.StreamID)
}

type StreamNotCreatedByUserError struct {
	StreamID string
	MemberID string
}

func (e *StreamNotCreatedByUserError) Error() string {
	return fmt.Sprintf("stream %s was not created by member %s", e.StreamID, e.MemberID)
}

type AlreadyRequestedError struct {
	StreamID string
	MemberID string
}

func (e *AlreadyRequestedError) Error() string {
	return fmt.Sprintf("member %s already requested to join stream %s", e.MemberID, e.StreamID)
}

type AlreadyApprovedError struct {
	StreamID string
	MemberID string
}

func (e *AlreadyApprovedError) Error() string {
	return fmt.Sprintf("member %s is already approved for stream %s", e.MemberID, e.StreamID)
}

// JoinDisapprovedError blocks re-requests from a disapproved member until the
// old record is cleared via LeaveStream.
type JoinDisapprovedError struct {
	StreamID string
	MemberID string
}

func (e *JoinDisapprovedError) Error() string {
	return fmt.Sprintf("join request of member %s for stream %s was disapproved", e.MemberID, e.StreamID)
}

type CannotJoinPrivateStreamError struct {
	StreamID string
}

func (e *CannotJoinPrivateStreamError) Error() string {
	return fmt.Sprintf("stream %s is not public, joining requires organizer approval", e.StreamID)
}

type StreamEndedError struct {
	StreamID string
}

func (e *StreamEndedError) Error() string {
	return fmt.Sprintf("stream %s has already ended", e.StreamID)
}

type StreamCanceledError struct {
	StreamID string
}

func (e *StreamCanceledError) Error() string {
	return fmt.Sprintf("stream %s is canceled", e.StreamID)
}

type StreamAlreadyCanceledError struct {
	StreamID string
}

func (e *StreamAlreadyCanceledError) Error() string {
	return fmt.Sprintf("stream %s is already canceled", e.StreamID)
}

type StreamAlreadyHappenedError struct {
	StreamID string
}

func (e *StreamAlreadyHappenedError) Error() string {
	return fmt.Sprintf("stream %s has already happened", e.StreamID)
}

type CannotCancelOrDeleteOngoingStreamError struct {
	StreamID string
}

func (e *CannotCancelOrDeleteOngoingStreamError) Error() string {
	return fmt.Sprintf("stream %s is ongoing and cannot be canceled or deleted", e.StreamID)
}

type OrganizerCannotLeaveError struct {
	StreamID string
	MemberID string
}

func (e *OrganizerCannotLeaveError) Error() string {
	return fmt.Sprintf("member %s organizes stream %s and cannot leave it", e.MemberID, e.StreamID)
}
