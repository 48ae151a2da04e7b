package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/api"
	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
	"github.com/s21platform/stream-service/internal/pkg/policy"
	"github.com/s21platform/stream-service/internal/pkg/streamlink"
)

type Handler struct {
	streamService StreamService
	validator     Validator
	jwtGenerator  JWTGenerator
}

func New(streamService StreamService, validator Validator, jwtGenerator JWTGenerator) *Handler {
	return &Handler{
		streamService: streamService,
		validator:     validator,
		jwtGenerator:  jwtGenerator,
	}
}

func (h *Handler) CreateStream(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateStream")

	var req api.CreateStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	organizerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get organizer ID")
		h.writeError(w, "failed to get organizer ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateStream(&req); err != nil {
		logger.Error(fmt.Sprintf("stream validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("stream validation failed: %v", err), http.StatusBadRequest)
		return
	}

	stream := &model.Stream{
		Title:          req.Title,
		Description:    req.Description,
		ScheduledStart: req.ScheduledStart,
		ScheduledEnd:   req.ScheduledEnd,
		Timezone:       req.Timezone,
		Visibility:     model.StreamVisibility(req.Visibility),
		Source:         model.StreamSource(req.Source),
	}

	created, err := h.streamService.CreateStream(r.Context(), organizerID, stream)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create stream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create stream: %v", err), errorStatus(err))
		return
	}

	h.writeJSON(w, streamResponse(created, model.NotAttendingJoinStatus), http.StatusOK)
}

func (h *Handler) GetStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetStream")

	viewerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get viewer ID")
		h.writeError(w, "failed to get viewer ID", http.StatusInternalServerError)
		return
	}

	stream, joinStatus, err := h.streamService.GetStream(r.Context(), streamId, viewerID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get stream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get stream: %v", err), errorStatus(err))
		return
	}

	h.writeJSON(w, streamResponse(stream, joinStatus), http.StatusOK)
}

func (h *Handler) UpdateStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateStream")

	var req api.UpdateStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := h.streamService.UpdateStream(r.Context(), streamId, callerID, req.Title, req.Description); err != nil {
		logger.Error(fmt.Sprintf("failed to update stream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update stream: %v", err), errorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RescheduleStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RescheduleStream")

	var req api.RescheduleStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateRescheduleStream(&req); err != nil {
		logger.Error(fmt.Sprintf("reschedule validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("reschedule validation failed: %v", err), http.StatusBadRequest)
		return
	}

	err := h.streamService.RescheduleStream(r.Context(), streamId, callerID, req.ScheduledStart, req.ScheduledEnd, req.Timezone)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to reschedule stream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to reschedule stream: %v", err), errorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CancelStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CancelStream")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := h.streamService.CancelStream(r.Context(), streamId, callerID); err != nil {
		logger.Error(fmt.Sprintf("failed to cancel stream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to cancel stream: %v", err), errorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteStream")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := h.streamService.DeleteStream(r.Context(), streamId, callerID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete stream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete stream: %v", err), errorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateVisibility(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateVisibility")

	var req api.UpdateVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateUpdateVisibility(&req); err != nil {
		logger.Error(fmt.Sprintf("visibility validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("visibility validation failed: %v", err), http.StatusBadRequest)
		return
	}

	err := h.streamService.UpdateVisibility(r.Context(), streamId, callerID, model.StreamVisibility(req.Visibility))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update visibility: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update visibility: %v", err), errorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RequestToJoin(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RequestToJoin")

	var req api.RequestToJoinRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error(fmt.Sprintf("failed to decode request: %v", err))
			h.writeError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	memberID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get member ID")
		h.writeError(w, "failed to get member ID", http.StatusInternalServerError)
		return
	}

	attendee, err := h.streamService.RequestToJoin(r.Context(), streamId, memberID, req.Comment)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to request to join: %v", err))
		h.writeError(w, fmt.Sprintf("failed to request to join: %v", err), errorStatus(err))
		return
	}

	h.writeJSON(w, attendeeResponse(attendee), http.StatusOK)
}

func (h *Handler) JoinPublicStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("JoinPublicStream")

	memberID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get member ID")
		h.writeError(w, "failed to get member ID", http.StatusInternalServerError)
		return
	}

	attendee, err := h.streamService.JoinPublicStream(r.Context(), streamId, memberID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to join stream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to join stream: %v", err), errorStatus(err))
		return
	}

	h.writeJSON(w, attendeeResponse(attendee), http.StatusOK)
}

func (h *Handler) ProcessApproval(w http.ResponseWriter, r *http.Request, streamId, attendeeId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ProcessApproval")

	var req api.ProcessApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateProcessApproval(&req); err != nil {
		logger.Error(fmt.Sprintf("approval validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("approval validation failed: %v", err), http.StatusBadRequest)
		return
	}

	attendee, err := h.streamService.ProcessApproval(r.Context(), streamId, attendeeId, callerID,
		model.RequestToJoinStatus(req.Decision), req.OrganizerComment)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to process approval: %v", err))
		h.writeError(w, fmt.Sprintf("failed to process approval: %v", err), errorStatus(err))
		return
	}

	h.writeJSON(w, attendeeResponse(attendee), http.StatusOK)
}

func (h *Handler) SetAttendance(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetAttendance")

	var req api.SetAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	memberID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get member ID")
		h.writeError(w, "failed to get member ID", http.StatusInternalServerError)
		return
	}

	if err := h.streamService.SetAttendance(r.Context(), streamId, memberID, req.Attending); err != nil {
		logger.Error(fmt.Sprintf("failed to set attendance: %v", err))
		h.writeError(w, fmt.Sprintf("failed to set attendance: %v", err), errorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LeaveStream(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LeaveStream")

	memberID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get member ID")
		h.writeError(w, "failed to get member ID", http.StatusInternalServerError)
		return
	}

	if err := h.streamService.LeaveStream(r.Context(), streamId, memberID); err != nil {
		logger.Error(fmt.Sprintf("failed to leave stream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to leave stream: %v", err), errorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) PromoteSpeaker(w http.ResponseWriter, r *http.Request, streamId, attendeeId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("PromoteSpeaker")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := h.streamService.PromoteSpeaker(r.Context(), streamId, attendeeId, callerID); err != nil {
		logger.Error(fmt.Sprintf("failed to promote speaker: %v", err))
		h.writeError(w, fmt.Sprintf("failed to promote speaker: %v", err), errorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListAttendees(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListAttendees")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	attendees, err := h.streamService.ListAttendees(r.Context(), streamId, callerID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list attendees: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list attendees: %v", err), errorStatus(err))
		return
	}

	response := api.ListAttendeesResponse{
		Attendees: make([]api.AttendeeResponse, len(*attendees)),
	}
	for i, attendee := range *attendees {
		response.Attendees[i] = attendeeResponse(&attendee)
	}

	h.writeJSON(w, response, http.StatusOK)
}

// GetStreamAccessToken hands out a broadcast token, available to joined
// members only.
func (h *Handler) GetStreamAccessToken(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetStreamAccessToken")

	memberID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get member ID")
		h.writeError(w, "failed to get member ID", http.StatusInternalServerError)
		return
	}

	_, joinStatus, err := h.streamService.GetStream(r.Context(), streamId, memberID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get stream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get stream: %v", err), errorStatus(err))
		return
	}

	if joinStatus != model.JoinedJoinStatus {
		logger.Error(fmt.Sprintf("member %s is not joined to stream %s", memberID, streamId))
		h.writeError(w, "member is not joined to the stream", http.StatusForbidden)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateStreamAccessToken(memberID, streamId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for member %s, stream %s", memberID, streamId))

	response := api.GetStreamAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func streamResponse(stream *model.Stream, joinStatus model.JoinStatus) api.StreamResponse {
	resp := api.StreamResponse{
		Id:             stream.ID.String(),
		Title:          stream.Title,
		Description:    stream.Description,
		ScheduledStart: stream.ScheduledStart.Format(time.RFC3339),
		ScheduledEnd:   stream.ScheduledEnd.Format(time.RFC3339),
		Timezone:       stream.Timezone,
		Visibility:     string(stream.Visibility),
		Status:         string(stream.Status),
		Source:         string(stream.Source),
		OrganizerId:    stream.OrganizerID.String(),
		TotalAttendees: stream.TotalAttendees,
		TotalSpeakers:  stream.TotalSpeakers,
		JoinStatus:     string(joinStatus),
	}

	if stream.StreamLink != nil {
		link := *stream.StreamLink
		if !policy.CanSeeStreamLink(joinStatus) {
			link = streamlink.ForSource(stream.Source).MaskLink(link)
		}
		resp.StreamLink = &link
	}

	return resp
}

func attendeeResponse(attendee *model.StreamAttendee) api.AttendeeResponse {
	return api.AttendeeResponse{
		Id:                  attendee.ID.String(),
		StreamId:            attendee.StreamID.String(),
		MemberId:            attendee.MemberID.String(),
		RequestToJoinStatus: string(attendee.RequestToJoinStatus),
		Attending:           attendee.Attending,
		IsASpeaker:          attendee.IsASpeaker,
		IsOrganizer:         attendee.IsOrganizer,
		AttendeeComment:     attendee.AttendeeComment,
		OrganizerComment:    attendee.OrganizerComment,
	}
}

func errorStatus(err error) int {
	var (
		streamNotFound   *model.StreamNotFoundError
		attendeeNotFound *model.AttendeeNotFoundError
		notOrganizer     *model.StreamNotCreatedByUserError
		organizerLeave   *model.OrganizerCannotLeaveError
		privateJoin      *model.CannotJoinPrivateStreamError
		alreadyRequested *model.AlreadyRequestedError
		alreadyApproved  *model.AlreadyApprovedError
		disapproved      *model.JoinDisapprovedError
		ended            *model.StreamEndedError
		canceled         *model.StreamCanceledError
		alreadyCanceled  *model.StreamAlreadyCanceledError
		alreadyHappened  *model.StreamAlreadyHappenedError
		ongoing          *model.CannotCancelOrDeleteOngoingStreamError
	)

	switch {
	case errors.As(err, &streamNotFound), errors.As(err, &attendeeNotFound):
		return http.StatusNotFound
	case errors.As(err, &notOrganizer), errors.As(err, &organizerLeave), errors.As(err, &privateJoin):
		return http.StatusForbidden
	case errors.As(err, &alreadyRequested), errors.As(err, &alreadyApproved), errors.As(err, &disapproved),
		errors.As(err, &ended), errors.As(err, &canceled), errors.As(err, &alreadyCanceled),
		errors.As(err, &alreadyHappened), errors.As(err, &ongoing):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
