package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"teetime/internal/domain"
	"teetime/internal/ports/input"
	"teetime/internal/ports/output"
)

// Services groups the use cases served by the API.
type Services struct {
	Calendar    input.CalendarUseCase
	Enrollments input.EnrollmentUseCase
	Roster      input.RosterUseCase
	Users       input.UserUseCase
}

// Handler holds all HTTP handlers of the API.
type Handler struct {
	svc        Services
	translator output.Translator
	locale     string
	now        func() time.Time
}

// NewHandler constructs a Handler. A nil now defaults to time.Now.
func NewHandler(svc Services, translator output.Translator, locale string, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{svc: svc, translator: translator, locale: locale, now: now}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid("body", err.Error())
	}
	return nil
}

// requestLocale prefers the client's Accept-Language over the server default.
func (h *Handler) requestLocale(r *http.Request) string {
	if al := r.Header.Get("Accept-Language"); al != "" {
		return al
	}
	return h.locale
}

func (h *Handler) message(r *http.Request, key string, data map[string]any) string {
	return h.translator.T(h.requestLocale(r), key, data)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEnrollment),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrCancellationWindowClosed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrConcurrentConflict):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and a localized message. Errors without
// a domain code are logged and reported generically.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := domain.Code(err)
	resp := errorResponse{Code: code}
	if code == "" {
		log.Printf("❌ %s %s: %v", r.Method, r.URL.Path, err)
		resp.Error = h.message(r, "errors.generic", nil)
	} else {
		resp.Error = h.message(r, "errors."+code, nil)
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Field = ve.Field
		resp.Detail = ve.Reason
	}
	writeJSON(w, status, resp)
}

func uintParam(r *http.Request, name string) (uint, error) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil || v == 0 {
		return 0, domain.Invalid(name, "must be a positive integer")
	}
	return uint(v), nil
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
