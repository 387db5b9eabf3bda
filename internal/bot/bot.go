// Package bot drives the interactive subscription flow over Telegram.
package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rambodazimi/trader-bot/internal/domain/subscriptions"
	"github.com/rambodazimi/trader-bot/internal/infra/metrics"
	"github.com/rambodazimi/trader-bot/internal/quotes"
	"github.com/rambodazimi/trader-bot/internal/selection"
)

// API is the slice of *tgbotapi.BotAPI the bot uses; tests substitute a fake.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Store is the durable subscription storage the flow reads and mutates.
type Store interface {
	Add(ctx context.Context, chatID int64, ticker string, intervalMin int) (int64, error)
	ListByChat(ctx context.Context, chatID int64) ([]subscriptions.Subscription, error)
	UpdateInterval(ctx context.Context, id, chatID int64, intervalMin int) error
	Delete(ctx context.Context, id, chatID int64) error
}

// Narrator produces advisor text. A nil Narrator disables /advisor.
type Narrator interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

type Bot struct {
	api      API
	log      *slog.Logger
	subs     Store
	tracker  *selection.Tracker
	quotes   quotes.Fetcher
	narrator Narrator
}

func New(api API, log *slog.Logger, subs Store, tracker *selection.Tracker,
	fetcher quotes.Fetcher, narrator Narrator) *Bot {

	return &Bot{
		api: api, log: log, subs: subs,
		tracker: tracker, quotes: fetcher, narrator: narrator,
	}
}

// Run consumes long-poll updates until ctx is cancelled. Each update is
// handled on its own goroutine so one chat's slow quote fetch or advisor
// call never stalls the others; per-chat state is protected by the tracker's
// lock and the store's own serialization.
func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			switch {
			case upd.Message != nil && upd.Message.IsCommand():
				go b.handleCommand(ctx, upd.Message)
			case upd.CallbackQuery != nil:
				go b.handleCallback(ctx, upd.CallbackQuery)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		metrics.SendFailures.Inc()
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyHTML(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeHTML
	b.send(m)
}

// SendHTML delivers one formatted message and reports the transport error to
// the caller; the dispatch scheduler uses it to isolate per-chat failures.
func (b *Bot) SendHTML(chatID int64, text string) error {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(m)
	return err
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Error("answer callback failed", "err", err)
	}
}

// editTextAndClear replaces a menu message with plain text, dropping its
// buttons so a finished step cannot be pressed twice.
func (b *Bot) editTextAndClear(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(
		chatID, messageID, text,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}},
	)
	b.send(edit)
}
