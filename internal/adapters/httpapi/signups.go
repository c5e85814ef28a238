package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"teetime/internal/domain"
	"teetime/internal/ports/input"
)

// Signup handles POST /signup
// Checks the event exists, resolves the user by email, then enrolls them.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		h.writeError(w, r, err)
		return
	}
	// An unknown event must not leave a new user behind.
	if _, err := h.svc.Calendar.GetEvent(r.Context(), h.now(), req.EventID); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, _, err := h.svc.Users.Resolve(r.Context(), req.Name, req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Enrollments.Signup(r.Context(), user.ID, req.EventID, req.GuestName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, signupResponse{
		EnrollmentID: res.EnrollmentID,
		Status:       res.Status,
		Message:      h.message(r, "info.signup."+res.Status, nil),
	})
}

// Cancel handles POST /signup/{id}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Enrollments.Cancel(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := cancelResponse{
		EnrollmentID: res.Enrollment.ID,
		Status:       res.Enrollment.Status(),
		Message:      h.message(r, "info.cancel", nil),
	}
	if res.Promoted != nil {
		resp.PromotedEnrollmentID = &res.Promoted.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

// UserSignups handles GET /user-signups/{email}
// An unknown email has no signups.
func (h *Handler) UserSignups(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Users.FindByEmail(r.Context(), chi.URLParam(r, "email"))
	if errors.Is(err, domain.ErrUserNotFound) {
		writeJSON(w, http.StatusOK, []enrollmentResponse{})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.svc.Enrollments.ListActiveForUser(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	now := h.now()
	events := make(map[uint]*input.EventSummary)
	for _, e := range list {
		if _, ok := events[e.EventID]; ok {
			continue
		}
		summary, err := h.svc.Calendar.GetEvent(r.Context(), now, e.EventID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		events[e.EventID] = summary
	}
	writeJSON(w, http.StatusOK, newEnrollmentResponses(list, events))
}
