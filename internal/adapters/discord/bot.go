package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"teetime/internal/infrastructure/notify"
	"teetime/internal/ports/input"
	"teetime/internal/ports/output"
)

const commandName = "golf"

// Bot is the Discord adapter: it answers the /golf command and posts
// enrollment notifications to a channel.
type Bot struct {
	session  *discordgo.Session
	handler  *Handler
	notifier *Notifier
}

// NewBot creates a Bot and wires the calendar use case and the notification renderer.
func NewBot(token, channelID, locale string, calendar input.CalendarUseCase, renderer *notify.Renderer, translator output.Translator) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	bot := &Bot{
		session:  s,
		handler:  NewHandler(calendar, translator, locale),
		notifier: NewNotifier(s, channelID, renderer),
	}
	bot.setupHandlers()
	return bot, nil
}

// Notifier returns the bot's NotificationSink.
func (b *Bot) Notifier() *Notifier { return b.notifier }

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == commandName {
			b.handler.HandleCommand(s, i)
		}
	case discordgo.InteractionMessageComponent:
		if i.MessageComponentData().CustomID == weekButtonID {
			b.handler.HandleNextWeek(s, i)
		}
	}
}

// Open connects the session and registers the slash command.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	cmd := &discordgo.ApplicationCommand{Name: commandName, Description: "Show the rolling two-week golf calendar"}
	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd); err != nil {
		log.Printf("⚠️ Failed to register command %s: %v", cmd.Name, err)
	}
	log.Println("🤖 Discord bot online.")
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}
