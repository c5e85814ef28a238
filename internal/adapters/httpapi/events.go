package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"teetime/internal/domain"
	"teetime/internal/ports/input"
)

// RollingEvents handles GET /events/rolling
// Generates any missing slot, then lists both weeks of the window.
func (h *Handler) RollingEvents(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Calendar.ListWindow(r.Context(), h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newWindowResponse(view))
}

// WeekEvents handles GET /events/week/{offset}
func (h *Handler) WeekEvents(w http.ResponseWriter, r *http.Request) {
	offset, err := strconv.Atoi(chi.URLParam(r, "offset"))
	if err != nil {
		h.writeError(w, r, domain.Invalid("offset", "must be an integer"))
		return
	}
	view, err := h.svc.Calendar.ListWeek(r.Context(), h.now(), offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newWindowResponse(view))
}

// GenerateEvents handles POST /generate-weekly-events
func (h *Handler) GenerateEvents(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.Calendar.GenerateRollingWindow(r.Context(), h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"events":  created,
		"message": h.message(r, "info.generated", map[string]any{"Count": created}),
	})
}

// Roster handles GET /events/{id}/roster
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	roster, err := h.svc.Roster.GetRoster(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var ids []string
	for _, list := range [][]input.RosterEntry{roster.Confirmed, roster.Waitlisted, roster.Cancelled} {
		for _, e := range list {
			ids = append(ids, e.UserID)
		}
	}
	users, err := h.svc.Users.FindByIDs(r.Context(), ids)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newRosterResponse(roster, users))
}

// Event handles GET /events/{id}
func (h *Handler) Event(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	summary, err := h.svc.Calendar.GetEvent(r.Context(), h.now(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newEventSummaryResponse(summary))
}
