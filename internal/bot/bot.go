package bot

import (
	"context"
	"log"
	"os"

	"blackjack-solo/internal/config"
	"blackjack-solo/internal/game"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	timeout int
}

func New(cfg *config.Config, games *game.Manager) (*Bot, error) {
	if err := tgbotapi.SetLogger(log.New(os.Stderr, "telegram: ", log.LstdFlags)); err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Debug

	return &Bot{
		api:     api,
		handler: NewHandler(api, games),
		timeout: int(cfg.UpdateTimeout.Seconds()),
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("Bot started: @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.timeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			log.Println("Bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handler.Dispatch(update)
		}
	}
}
