package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"blackjack-solo/internal/bot"
	"blackjack-solo/internal/config"
	"blackjack-solo/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	b, err := bot.New(cfg, game.NewManager())
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
