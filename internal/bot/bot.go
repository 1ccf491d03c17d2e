package bot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/muzaffarov/splitbill/internal/config"
	"github.com/muzaffarov/splitbill/internal/session"
)

type Bot struct {
	session *discordgo.Session
	manager *session.Manager
	config  *config.Config
}

func New(cfg *config.Config, manager *session.Manager) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		manager: manager,
		config:  cfg,
	}

	// Register event handlers
	s.AddHandler(bot.onReady)
	s.AddHandler(bot.onGuildCreate)
	s.AddHandler(bot.onInteractionCreate)

	s.Identify.Intents = discordgo.IntentsGuilds

	return bot, nil
}

// Session exposes the underlying connection so the web API can post
// settlements into channels.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	log.Println("Discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}
