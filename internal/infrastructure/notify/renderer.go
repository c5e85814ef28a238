// Package notify renders enrollment notifications and provides the
// log-backed NotificationSink.
package notify

import (
	"context"
	"fmt"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/ports/output"
	pkgdiscord "teetime/pkg/discord"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	Recipient entities.User
	Event     entities.Event
	Status    string
	Title     string
	Body      string
}

// Renderer resolves the recipient and event of a notification and renders
// its text in the configured locale.
type Renderer struct {
	events     output.EventRepository
	users      output.UserDirectory
	translator output.Translator
	locale     string
}

func NewRenderer(events output.EventRepository, users output.UserDirectory, translator output.Translator, locale string) *Renderer {
	return &Renderer{events: events, users: users, translator: translator, locale: locale}
}

func (r *Renderer) Signup(ctx context.Context, userID string, eventID uint, status, guestName string) (*Message, error) {
	key := "notify.signup.confirmed"
	if status == domain.StatusWaitlisted {
		key = "notify.signup.waitlisted"
	}
	return r.render(ctx, key, userID, eventID, status, guestName)
}

func (r *Renderer) Promotion(ctx context.Context, userID string, eventID uint) (*Message, error) {
	return r.render(ctx, "notify.promotion", userID, eventID, domain.StatusConfirmed, "")
}

// Labels returns the translated embed field names.
func (r *Renderer) Labels() pkgdiscord.EmbedLabels {
	return pkgdiscord.EmbedLabels{
		Cutoff:       r.translator.T(r.locale, "notify.field.cutoff", nil),
		Cancellation: r.translator.T(r.locale, "notify.field.cancellation", nil),
	}
}

func (r *Renderer) render(ctx context.Context, key, userID string, eventID uint, status, guestName string) (*Message, error) {
	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load recipient %s: %w", userID, err)
	}
	event, err := r.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event %d: %w", eventID, err)
	}
	data := map[string]any{
		"Name":  user.Name,
		"Day":   event.DayOfWeek,
		"Date":  pkgdiscord.FormatEventDate(event.Date),
		"Guest": guestName,
	}
	return &Message{
		Recipient: *user,
		Event:     *event,
		Status:    status,
		Title:     r.translator.T(r.locale, key+".title", nil),
		Body:      r.translator.T(r.locale, key, data),
	}, nil
}
