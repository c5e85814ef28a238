package discord

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"teetime/internal/application"
	"teetime/internal/domain"
	"teetime/internal/infrastructure/i18n"
	"teetime/internal/infrastructure/memory"
	"teetime/internal/infrastructure/notify"
	"teetime/pkg/tz"
)

type fakeSender struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channelID = channelID
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, nil
}

var now = time.Date(2026, time.October, 17, 10, 0, 0, 0, tz.Pacific)

func seeded(t *testing.T) (*memory.Store, string) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	if _, err := application.NewCalendarService(store).GenerateRollingWindow(ctx, now); err != nil {
		t.Fatalf("generate: %v", err)
	}
	u, _, err := store.Resolve(ctx, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return store, u.ID
}

func TestNotifierSendsEmbeds(t *testing.T) {
	store, userID := seeded(t)
	renderer := notify.NewRenderer(store.Events(), store, i18n.NewTranslator("en"), "en")
	sender := &fakeSender{}
	n := NewNotifier(sender, "123", renderer)
	ctx := context.Background()

	if err := n.NotifySignup(ctx, userID, 4, domain.StatusConfirmed, ""); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if err := n.NotifyPromotion(ctx, userID, 4); err != nil {
		t.Fatalf("promotion: %v", err)
	}
	if sender.channelID != "123" || len(sender.embeds) != 2 {
		t.Fatalf("sent %d embeds to %q", len(sender.embeds), sender.channelID)
	}
	if got := sender.embeds[0].Title; got != "Signup confirmed" {
		t.Fatalf("title = %q", got)
	}
	if !strings.Contains(sender.embeds[1].Description, "Monday, 2026-10-26") {
		t.Fatalf("description = %q", sender.embeds[1].Description)
	}
}

func TestNotifierErrors(t *testing.T) {
	store, userID := seeded(t)
	renderer := notify.NewRenderer(store.Events(), store, i18n.NewTranslator("en"), "en")
	ctx := context.Background()

	sender := &fakeSender{err: errors.New("rate limited")}
	if err := NewNotifier(sender, "123", renderer).NotifyPromotion(ctx, userID, 1); err == nil {
		t.Fatal("expected the send error")
	}
	if err := NewNotifier(&fakeSender{}, "123", renderer).NotifySignup(ctx, "nobody", 1, domain.StatusConfirmed, ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestWindowEmbed(t *testing.T) {
	store, _ := seeded(t)
	cal := application.NewCalendarService(store)
	h := NewHandler(cal, i18n.NewTranslator("en"), "en")

	view, err := cal.ListWindow(context.Background(), now)
	if err != nil {
		t.Fatal(err)
	}
	embed := h.windowEmbed(view)
	if embed.Title != "Golf calendar 2026-10-19 to 2026-11-01" {
		t.Fatalf("title = %q", embed.Title)
	}
	lines := strings.Split(strings.TrimSpace(embed.Description), "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d: %q", len(lines), embed.Description)
	}
	if !strings.HasSuffix(lines[0], "(waitlist only)") || strings.HasSuffix(lines[3], "(waitlist only)") {
		t.Fatalf("unexpected cutoff markers: %q", embed.Description)
	}
	if !strings.Contains(lines[3], "**Monday 2026-10-26**: 0/20 confirmed") {
		t.Fatalf("line = %q", lines[3])
	}
}
