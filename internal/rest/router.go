package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the REST surface, extracting URL params the same way
// for every handler.
func RegisterRoutes(router chi.Router, h *Handler) {
	router.Post("/api/streams", h.CreateStream)

	router.Get("/api/streams/{stream_id}", withStream(h.GetStream))
	router.Put("/api/streams/{stream_id}", withStream(h.UpdateStream))
	router.Delete("/api/streams/{stream_id}", withStream(h.DeleteStream))
	router.Post("/api/streams/{stream_id}/reschedule", withStream(h.RescheduleStream))
	router.Post("/api/streams/{stream_id}/cancel", withStream(h.CancelStream))
	router.Patch("/api/streams/{stream_id}/visibility", withStream(h.UpdateVisibility))

	router.Post("/api/streams/{stream_id}/join", withStream(h.JoinPublicStream))
	router.Post("/api/streams/{stream_id}/join-requests", withStream(h.RequestToJoin))
	router.Put("/api/streams/{stream_id}/attendance", withStream(h.SetAttendance))
	router.Delete("/api/streams/{stream_id}/attendees/me", withStream(h.LeaveStream))
	router.Get("/api/streams/{stream_id}/attendees", withStream(h.ListAttendees))
	router.Post("/api/streams/{stream_id}/attendees/{attendee_id}/decision", withAttendee(h.ProcessApproval))
	router.Post("/api/streams/{stream_id}/attendees/{attendee_id}/speaker", withAttendee(h.PromoteSpeaker))

	router.Get("/api/streams/{stream_id}/access-token", withStream(h.GetStreamAccessToken))
}

func withStream(fn func(w http.ResponseWriter, r *http.Request, streamId string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, chi.URLParam(r, "stream_id"))
	}
}

func withAttendee(fn func(w http.ResponseWriter, r *http.Request, streamId, attendeeId string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, chi.URLParam(r, "stream_id"), chi.URLParam(r, "attendee_id"))
	}
}
