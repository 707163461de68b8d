package client

import (
	"fmt"

	"debatab/config"

	"github.com/bwmarrin/discordgo"
)

// DiscordClient posts announcements to the configured channel. Without a bot
// token it stays disabled and every send is a no-op.
type DiscordClient struct {
	session   *discordgo.Session
	channelId string
}

func NewDiscordClient() (*DiscordClient, error) {
	env := config.Env()
	if env.DiscordBotToken == "" || env.DiscordAnnounceChannel == "" {
		return &DiscordClient{}, nil
	}
	session, err := discordgo.New("Bot " + env.DiscordBotToken)
	if err != nil {
		return nil, err
	}
	return &DiscordClient{
		session:   session,
		channelId: env.DiscordAnnounceChannel,
	}, nil
}

func (c *DiscordClient) Enabled() bool {
	return c.session != nil
}

func (c *DiscordClient) SendMessage(content string) error {
	if !c.Enabled() {
		return nil
	}
	_, err := c.session.ChannelMessageSend(c.channelId, content)
	if err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}
	return nil
}
