package discord

import (
	"teetime/internal/domain"
	"teetime/internal/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const (
	colorConfirmed  = 0x57F287
	colorWaitlisted = 0xFEE75C
)

// EmbedLabels carries the translated field names of a notification embed.
type EmbedLabels struct {
	Cutoff       string
	Cancellation string
}

// BuildNotificationEmbed builds the embed posted for a signup or promotion.
func BuildNotificationEmbed(title, description, status string, event *entities.Event, labels EmbedLabels) *discordgo.MessageEmbed {
	color := colorConfirmed
	if status == domain.StatusWaitlisted {
		color = colorWaitlisted
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: labels.Cutoff, Value: FormatDeadline(event.SignupCutoff), Inline: true},
			{Name: labels.Cancellation, Value: FormatDeadline(event.CancellationDeadline), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: event.DayOfWeek + " " + FormatEventDate(event.Date)},
	}
}
