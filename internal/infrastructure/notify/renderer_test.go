package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"teetime/internal/application"
	"teetime/internal/domain"
	"teetime/internal/infrastructure/i18n"
	"teetime/internal/infrastructure/memory"
	"teetime/pkg/tz"
)

func TestRendererSignupAndPromotion(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	now := time.Date(2026, time.October, 17, 10, 0, 0, 0, tz.Pacific)
	if _, err := application.NewCalendarService(store).GenerateRollingWindow(ctx, now); err != nil {
		t.Fatalf("generate: %v", err)
	}
	user, _, err := store.Resolve(ctx, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	r := NewRenderer(store.Events(), store, i18n.NewTranslator("en"), "en")

	msg, err := r.Signup(ctx, user.ID, 1, domain.StatusWaitlisted, "Bob")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if want := "Ada, you are on the waitlist for golf on Monday, 2026-10-19 with guest Bob."; msg.Body != want {
		t.Fatalf("body = %q, want %q", msg.Body, want)
	}
	if msg.Title != "Added to the waitlist" || msg.Recipient.Email != "ada@example.com" {
		t.Fatalf("unexpected message %+v", msg)
	}

	msg, err = r.Promotion(ctx, user.ID, 1)
	if err != nil {
		t.Fatalf("promotion: %v", err)
	}
	if msg.Status != domain.StatusConfirmed || msg.Title != "Promoted from the waitlist" {
		t.Fatalf("unexpected promotion message %+v", msg)
	}

	if _, err := r.Promotion(ctx, "missing", 1); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("unknown user: got %v, want ErrUserNotFound", err)
	}
	if _, err := r.Promotion(ctx, user.ID, 99); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("unknown event: got %v, want ErrEventNotFound", err)
	}
}
