package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"teetime/internal/infrastructure/notify"
	"teetime/internal/ports/output"
	pkgdiscord "teetime/pkg/discord"
)

var _ output.NotificationSink = (*Notifier)(nil)

// channelSender is the part of *discordgo.Session the notifier uses.
type channelSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts enrollment notifications as embeds in one channel.
type Notifier struct {
	sender    channelSender
	channelID string
	renderer  *notify.Renderer
}

func NewNotifier(sender channelSender, channelID string, renderer *notify.Renderer) *Notifier {
	return &Notifier{sender: sender, channelID: channelID, renderer: renderer}
}

func (n *Notifier) NotifySignup(ctx context.Context, userID string, eventID uint, status, guestName string) error {
	msg, err := n.renderer.Signup(ctx, userID, eventID, status, guestName)
	if err != nil {
		return err
	}
	return n.send(msg)
}

func (n *Notifier) NotifyPromotion(ctx context.Context, userID string, eventID uint) error {
	msg, err := n.renderer.Promotion(ctx, userID, eventID)
	if err != nil {
		return err
	}
	return n.send(msg)
}

func (n *Notifier) send(msg *notify.Message) error {
	embed := pkgdiscord.BuildNotificationEmbed(msg.Title, msg.Body, msg.Status, &msg.Event, n.renderer.Labels())
	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		return fmt.Errorf("send discord notification: %w", err)
	}
	return nil
}
