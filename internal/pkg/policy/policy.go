// Package policy derives the display join status of a member for a stream.
// It is pure decision logic: nothing here reads or writes state.
package policy

import "github.com/s21platform/stream-service/internal/model"

// Decide maps stream visibility, the persisted request status and timing to
// the status shown to the member. A nil attendee means no record exists yet.
// An ended stream overrides everything for display purposes only.
func Decide(visibility model.StreamVisibility, attendee *model.StreamAttendee, hasEnded bool) model.JoinStatus {
	if hasEnded {
		return model.StreamEndedJoinStatus
	}

	// The organizer row carries attending=false to keep it out of the
	// audience counter, but the organizer is always a joined member.
	if attendee != nil && attendee.IsOrganizer {
		return model.JoinedJoinStatus
	}

	if attendee == nil {
		if visibility == model.PublicVisibility {
			return model.NotJoinedPublicJoinStatus
		}
		return model.NotJoinedPrivateJoinStatus
	}

	switch attendee.RequestToJoinStatus {
	case model.PendingRequestStatus:
		return model.PendingApprovalJoinStatus
	case model.DisapprovedRequestStatus:
		return model.DisapprovedJoinStatus
	case model.ApprovedRequestStatus:
		if attendee.Attending {
			return model.JoinedJoinStatus
		}
		return model.NotAttendingJoinStatus
	}

	if visibility == model.PublicVisibility {
		return model.NotJoinedPublicJoinStatus
	}
	return model.NotJoinedPrivateJoinStatus
}

// CanSelfJoin reports whether the member may join without organizer approval.
func CanSelfJoin(visibility model.StreamVisibility) bool {
	return visibility == model.PublicVisibility
}

// CanSeeStreamLink reports whether the unmasked stream link may be shown.
func CanSeeStreamLink(status model.JoinStatus) bool {
	return status == model.JoinedJoinStatus
}
