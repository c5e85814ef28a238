package discord

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"teetime/internal/ports/input"
	pkgdiscord "teetime/pkg/discord"
)

const (
	weekButtonID = "btn_week_1"
	embedColor   = 0x5865F2
)

// HandleCommand answers /golf with the rolling window, generating missing slots.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	view, err := h.calendar.ListWindow(context.Background(), h.now())
	if err != nil {
		log.Printf("❌ Failed to list rolling window: %v", err)
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil), nil)
		return
	}
	respondEphemeral(s, i.Interaction, "", h.windowEmbed(view), discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: h.translate("discord.window.next_week", nil), Style: discordgo.SecondaryButton, CustomID: weekButtonID},
	}})
}

// HandleNextWeek answers the button with the window's second week only.
func (h *Handler) HandleNextWeek(s *discordgo.Session, i *discordgo.InteractionCreate) {
	view, err := h.calendar.ListWeek(context.Background(), h.now(), 1)
	if err != nil {
		log.Printf("❌ Failed to list next week: %v", err)
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil), nil)
		return
	}
	respondEphemeral(s, i.Interaction, "", h.windowEmbed(view))
}

func (h *Handler) windowEmbed(view *input.WindowView) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, e := range view.Events {
		key := "discord.window.line"
		if e.IsCutoffPassed {
			key = "discord.window.line_closed"
		}
		b.WriteString(h.translate(key, map[string]any{
			"Day":        e.Event.DayOfWeek,
			"Date":       pkgdiscord.FormatEventDate(e.Event.Date),
			"Confirmed":  e.Confirmed,
			"Capacity":   e.Event.Capacity,
			"Waitlisted": e.Waitlisted,
		}))
		b.WriteString("\n")
	}
	if len(view.Events) == 0 {
		b.WriteString(h.translate("discord.window.empty", nil))
	}
	return &discordgo.MessageEmbed{
		Title: h.translate("discord.window.title", map[string]any{
			"Start": pkgdiscord.FormatEventDate(view.Start),
			"End":   pkgdiscord.FormatEventDate(view.End),
		}),
		Description: b.String(),
		Color:       embedColor,
	}
}
