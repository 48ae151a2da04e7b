package validator

import (
	"fmt"
	"strings"

	"github.com/s21platform/stream-service/internal/api"
	"github.com/s21platform/stream-service/internal/model"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func validVisibility(visibility string) bool {
	switch model.StreamVisibility(visibility) {
	case model.PublicVisibility, model.PrivateVisibility, model.ProtectedVisibility:
		return true
	}
	return false
}

func validSource(source string) bool {
	switch model.StreamSource(source) {
	case model.GoogleMeetSource, model.YouTubeLiveSource:
		return true
	}
	return false
}

func (v *Validator) ValidateCreateStream(req *api.CreateStreamRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if len([]rune(req.Title)) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}

	if req.ScheduledStart.IsZero() || req.ScheduledEnd.IsZero() {
		return fmt.Errorf("scheduled_start and scheduled_end are required")
	}

	if !req.ScheduledEnd.After(req.ScheduledStart) {
		return fmt.Errorf("scheduled_end must be after scheduled_start")
	}

	if !validVisibility(req.Visibility) {
		return fmt.Errorf("visibility '%s' is not supported", req.Visibility)
	}

	if !validSource(req.Source) {
		return fmt.Errorf("stream source '%s' is not supported", req.Source)
	}

	return nil
}

func (v *Validator) ValidateRescheduleStream(req *api.RescheduleStreamRequest) error {
	if req.ScheduledStart.IsZero() || req.ScheduledEnd.IsZero() {
		return fmt.Errorf("scheduled_start and scheduled_end are required")
	}

	if !req.ScheduledEnd.After(req.ScheduledStart) {
		return fmt.Errorf("scheduled_end must be after scheduled_start")
	}

	return nil
}

func (v *Validator) ValidateUpdateVisibility(req *api.UpdateVisibilityRequest) error {
	if !validVisibility(req.Visibility) {
		return fmt.Errorf("visibility '%s' is not supported", req.Visibility)
	}

	return nil
}

func (v *Validator) ValidateProcessApproval(req *api.ProcessApprovalRequest) error {
	switch model.RequestToJoinStatus(req.Decision) {
	case model.ApprovedRequestStatus, model.DisapprovedRequestStatus:
		return nil
	}

	return fmt.Errorf("decision '%s' is not supported", req.Decision)
}
