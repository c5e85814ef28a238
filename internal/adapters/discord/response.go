package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string, embed *discordgo.MessageEmbed, components ...discordgo.MessageComponent) {
	data := &discordgo.InteractionResponseData{
		Content:    content,
		Flags:      discordgo.MessageFlagsEphemeral,
		Components: components,
	}
	if embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{embed}
	}
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("❌ Interaction response failed: %v", err)
	}
}
