package httpapi

import (
	"strings"
	"time"
	"unicode/utf8"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/ports/input"
)

const maxGuestNameLen = 100

type errorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Field  string `json:"field,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type signupRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	EventID   uint   `json:"event_id"`
	GuestName string `json:"guest_name"`
}

// validate checks the request before any user is created.
func (req *signupRequest) validate() error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return domain.Invalid("name", "is required")
	case strings.TrimSpace(req.Email) == "":
		return domain.Invalid("email", "is required")
	case req.EventID == 0:
		return domain.Invalid("event_id", "is required")
	case utf8.RuneCountInString(strings.TrimSpace(req.GuestName)) > maxGuestNameLen:
		return domain.Invalid("guest_name", "is too long")
	}
	return nil
}

type userRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type signupResponse struct {
	EnrollmentID uint   `json:"enrollment_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

type cancelResponse struct {
	EnrollmentID         uint   `json:"enrollment_id"`
	Status               string `json:"status"`
	PromotedEnrollmentID *uint  `json:"promoted_enrollment_id,omitempty"`
	Message              string `json:"message"`
}

type eventResponse struct {
	ID                   uint      `json:"id"`
	Date                 string    `json:"date"`
	DayOfWeek            string    `json:"day_of_week"`
	Capacity             int       `json:"capacity"`
	SignupCutoff         time.Time `json:"signup_cutoff"`
	CancellationDeadline time.Time `json:"cancellation_deadline"`
}

func newEventResponse(e *entities.Event) eventResponse {
	return eventResponse{
		ID:                   e.ID,
		Date:                 e.Date.Format(time.DateOnly),
		DayOfWeek:            e.DayOfWeek,
		Capacity:             e.Capacity,
		SignupCutoff:         e.SignupCutoff,
		CancellationDeadline: e.CancellationDeadline,
	}
}

type eventSummaryResponse struct {
	eventResponse
	ConfirmedCount int  `json:"confirmed_count"`
	WaitlistCount  int  `json:"waitlist_count"`
	AvailableSpots int  `json:"available_spots"`
	IsFull         bool `json:"is_full"`
	IsCutoffPassed bool `json:"is_cutoff_passed"`
	CanCancel      bool `json:"can_cancel"`
}

type windowResponse struct {
	Start  string                 `json:"start"`
	End    string                 `json:"end"`
	Events []eventSummaryResponse `json:"events"`
}

func newWindowResponse(v *input.WindowView) windowResponse {
	resp := windowResponse{
		Start:  v.Start.Format(time.DateOnly),
		End:    v.End.Format(time.DateOnly),
		Events: make([]eventSummaryResponse, 0, len(v.Events)),
	}
	for i := range v.Events {
		resp.Events = append(resp.Events, newEventSummaryResponse(&v.Events[i]))
	}
	return resp
}

func newEventSummaryResponse(s *input.EventSummary) eventSummaryResponse {
	return eventSummaryResponse{
		eventResponse:  newEventResponse(&s.Event),
		ConfirmedCount: s.Confirmed,
		WaitlistCount:  s.Waitlisted,
		AvailableSpots: s.AvailableSpots,
		IsFull:         s.IsFull,
		IsCutoffPassed: s.IsCutoffPassed,
		CanCancel:      s.CanCancel,
	}
}

type rosterEntryResponse struct {
	EnrollmentID uint       `json:"enrollment_id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email,omitempty"`
	GuestName    string     `json:"guest_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

type rosterResponse struct {
	Event          eventResponse         `json:"event"`
	ConfirmedCount int                   `json:"confirmed_count"`
	Confirmed      []rosterEntryResponse `json:"confirmed"`
	Waitlisted     []rosterEntryResponse `json:"waitlisted"`
	Cancelled      []rosterEntryResponse `json:"cancelled"`
}

func newRosterResponse(ro *input.Roster, users map[string]entities.User) rosterResponse {
	entries := func(list []input.RosterEntry) []rosterEntryResponse {
		out := make([]rosterEntryResponse, 0, len(list))
		for _, e := range list {
			item := rosterEntryResponse{
				EnrollmentID: e.EnrollmentID,
				UserID:       e.UserID,
				GuestName:    e.GuestName,
				CreatedAt:    e.CreatedAt,
			}
			if u, ok := users[e.UserID]; ok {
				item.Name = u.Name
				item.Email = u.Email
			}
			if !e.CancelledAt.IsZero() {
				at := e.CancelledAt
				item.CancelledAt = &at
			}
			out = append(out, item)
		}
		return out
	}
	return rosterResponse{
		Event:          newEventResponse(&ro.Event),
		ConfirmedCount: len(ro.Confirmed),
		Confirmed:      entries(ro.Confirmed),
		Waitlisted:     entries(ro.Waitlisted),
		Cancelled:      entries(ro.Cancelled),
	}
}

type enrollmentResponse struct {
	EnrollmentID uint                 `json:"enrollment_id"`
	EventID      uint                 `json:"event_id"`
	Status       string               `json:"status"`
	GuestName    string               `json:"guest_name,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	Event        eventSummaryResponse `json:"event"`
}

// newEnrollmentResponses pairs each enrollment with its event; events
// holds one summary per distinct event id.
func newEnrollmentResponses(list []entities.Enrollment, events map[uint]*input.EventSummary) []enrollmentResponse {
	out := make([]enrollmentResponse, 0, len(list))
	for i := range list {
		e := &list[i]
		item := enrollmentResponse{
			EnrollmentID: e.ID,
			EventID:      e.EventID,
			Status:       e.Status(),
			GuestName:    e.GuestName,
			CreatedAt:    e.CreatedAt,
		}
		if s, ok := events[e.EventID]; ok {
			item.Event = newEventSummaryResponse(s)
		}
		out = append(out, item)
	}
	return out
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *entities.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
