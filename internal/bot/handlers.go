package bot

import (
	"errors"
	"log"
	"strings"

	"blackjack-solo/internal/game"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the part of *tgbotapi.BotAPI the handlers use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot   sender
	games *game.Manager
}

func NewHandler(bot sender, games *game.Manager) *Handler {
	return &Handler{
		bot:   bot,
		games: games,
	}
}

// ============== HELPERS ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

func (h *Handler) sendTable(chatID int64, snap game.Snapshot) {
	kb := GameKeyboard()
	if snap.Resolved() {
		kb = EndGameKeyboard()
	}
	h.sendWithKeyboard(chatID, renderTable(snap), kb)
}

// ============== COMMANDS ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Welcome to Blackjack!\n\n"+
			"/play — deal a new round\n"+
			"/help — rules\n"+
			"/quit — leave the table")
	h.HandlePlay(chatID)
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Get closer to 21 than the dealer without going over.\n\n"+
			"📊 Points:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11, or 1 if you would go over\n\n"+
			"🎮 Actions:\n"+
			"• Hit — take a card\n"+
			"• Stand — keep your hand and compare with the dealer\n\n"+
			"The dealer keeps the two cards it was dealt.")
}

func (h *Handler) HandlePlay(chatID int64) {
	snap := h.games.Restart(chatID)
	log.Printf("chat %d: new round, player %d dealer %d blackjack=%s",
		chatID, snap.Player.Value, snap.Dealer.Value, snap.Blackjack)
	h.sendTable(chatID, snap)
}

func (h *Handler) HandleQuit(chatID int64) {
	h.games.Delete(chatID)
	h.send(chatID, "👋 Thanks for playing. Send /play to sit down again.")
}

// ============== CALLBACKS ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID)
		return
	case CallbackQuit:
		h.answerCallback(callback.ID, "")
		h.HandleQuit(chatID)
		return
	}

	var action func(*game.State) (game.Snapshot, error)
	switch callback.Data {
	case CallbackHit:
		action = (*game.State).Hit
	case CallbackStand:
		action = (*game.State).Stand
	default:
		h.answerCallback(callback.ID, "Unknown action")
		return
	}

	snap, ok, err := h.games.Do(chatID, action)
	if !ok {
		h.answerCallback(callback.ID, "No active round. Send /play")
		return
	}
	if errors.Is(err, game.ErrInvalidTransition) {
		h.answerCallback(callback.ID, "This round is over")
		return
	}
	if err != nil {
		log.Printf("chat %d: %s failed: %v", chatID, callback.Data, err)
		h.answerCallback(callback.ID, "Error")
		return
	}

	if snap.Resolved() {
		log.Printf("chat %d: round over, winner %s (%d vs %d)",
			chatID, snap.Winner, snap.Player.Value, snap.Dealer.Value)
	}

	h.sendTable(chatID, snap)
	h.answerCallback(callback.ID, "")
}

// ============== MESSAGES ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	// "/play@SomeBot" in group chats
	cmd, _, _ := strings.Cut(strings.ToLower(parts[0]), "@")

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID)
	case "/quit":
		h.HandleQuit(chatID)
	}
}

// Dispatch routes one update to the matching handler.
func (h *Handler) Dispatch(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.HandleCallback(update.CallbackQuery)
		return
	}

	if update.Message != nil {
		h.HandleMessage(update.Message)
	}
}
