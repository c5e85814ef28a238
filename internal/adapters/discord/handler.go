package discord

import (
	"time"

	"teetime/internal/ports/input"
	"teetime/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	calendar   input.CalendarUseCase
	translator output.Translator
	locale     string
	now        func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(calendar input.CalendarUseCase, translator output.Translator, locale string) *Handler {
	return &Handler{
		calendar:   calendar,
		translator: translator,
		locale:     locale,
		now:        time.Now,
	}
}

func (h *Handler) translate(key string, data map[string]any) string {
	return h.translator.T(h.locale, key, data)
}
