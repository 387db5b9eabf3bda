package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rambodazimi/trader-bot/internal/advisor"
	"github.com/rambodazimi/trader-bot/internal/quotes"
)

const helpText = `🤖 <b>MTL Trader Bot</b>

Stay up to date with your favorite stocks and receive educational insights.

📋 <b>Commands:</b>
• <code>/start</code> – Start the bot and choose popular stocks to subscribe.
• <code>/price SYMBOL</code> – Get the current price and change for a stock.
• <code>/my_subscriptions</code> – View your subscriptions, edit intervals, or delete them.
• <code>/advisor SYMBOL [budget]</code> – Get an educational AI analysis of a stock.
• <code>/export</code> – Download your subscriptions as an Excel file.
• <code>/help</code> – Show this help message.

ℹ️ Subscriptions can be set to 1 min, 30 min, 1 h, 6 h, 12 h, or 24 h updates.

⚠️ All information provided is for educational purposes only and not financial advice.`

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		m := tgbotapi.NewMessage(chatID,
			"🤖 Welcome to <b>MTL Trader Bot</b>!\nChoose a stock to subscribe (you can add multiple):")
		m.ParseMode = tgbotapi.ModeHTML
		m.ReplyMarkup = stockKeyboard()
		b.send(m)

	case "help":
		b.replyHTML(chatID, helpText)

	case "price":
		b.handlePrice(ctx, chatID, msg.CommandArguments())

	case "my_subscriptions":
		b.showSubscriptions(ctx, chatID)

	case "advisor":
		b.handleAdvisor(ctx, chatID, msg.CommandArguments())

	case "export":
		b.exportSubscriptions(ctx, chatID)

	default:
		b.reply(chatID, "Unknown command. Try /help")
	}
}

func (b *Bot) handlePrice(ctx context.Context, chatID int64, args string) {
	fields := strings.Fields(args)
	if len(fields) < 1 {
		b.reply(chatID, "Usage: /price SYMBOL")
		return
	}
	symbol := strings.ToUpper(fields[0])

	q, err := b.quotes.Fetch(ctx, symbol)
	if err != nil {
		b.reply(chatID, "Could not fetch price.")
		return
	}
	b.replyHTML(chatID, quotes.Format(symbol, q.Last, q.Prev))
}

func (b *Bot) showSubscriptions(ctx context.Context, chatID int64) {
	list, err := b.subs.ListByChat(ctx, chatID)
	if err != nil {
		b.log.Error("list subscriptions failed", "chat_id", chatID, "err", err)
		b.reply(chatID, "Something went wrong, please try again.")
		return
	}
	if len(list) == 0 {
		b.reply(chatID, "You have no subscriptions.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 <b>Your subscriptions:</b>\nSelect an action below:\n\n")
	for _, s := range list {
		fmt.Fprintf(&sb, "• %s (every %d min)\n", s.Ticker, s.IntervalMin)
	}
	m := tgbotapi.NewMessage(chatID, sb.String())
	m.ParseMode = tgbotapi.ModeHTML
	m.ReplyMarkup = subscriptionListKeyboard(list)
	b.send(m)
}

func (b *Bot) handleAdvisor(ctx context.Context, chatID int64, args string) {
	if b.narrator == nil {
		b.reply(chatID, "Advisor is not configured.")
		return
	}
	fields := strings.Fields(args)
	if len(fields) < 1 {
		b.reply(chatID, "Usage: /advisor SYMBOL (optionally add your budget after the symbol)")
		return
	}
	symbol := strings.ToUpper(fields[0])
	var budget float64
	if len(fields) > 1 {
		if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
			budget = v
		}
	}

	b.reply(chatID, fmt.Sprintf("🔄 Gathering data for %s…", symbol))

	var tickers []string
	if list, err := b.subs.ListByChat(ctx, chatID); err == nil {
		for _, s := range list {
			tickers = append(tickers, s.Ticker)
		}
	}

	text, err := b.narrator.Analyze(ctx, advisor.BuildPrompt(symbol, budget, tickers))
	if err != nil {
		b.log.Error("advisor failed", "chat_id", chatID, "err", err)
		b.reply(chatID, "Sorry, analysis is unavailable right now.")
		return
	}
	b.replyHTML(chatID, fmt.Sprintf("📊 <b>Your Educational Stock Analysis for %s:</b>\n\n%s", symbol, text))
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answerCallback(cb)
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID

	ev, err := parseCallback(cb.Data)
	if err != nil {
		b.log.Warn("unrecognized callback", "chat_id", chatID, "data", cb.Data)
		return
	}

	switch ev.kind {
	case cbStockPicked:
		selected := b.tracker.Append(chatID, ev.ticker)
		text := fmt.Sprintf("✅ Added %s. Currently selected: %s\nNow choose update interval:",
			ev.ticker, strings.Join(selected, ", "))
		b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, text, intervalKeyboard(0)))

	case cbIntervalPicked:
		// An empty selection still confirms; it only lists nothing.
		tickers := b.tracker.TakeAndClear(chatID)
		for _, t := range tickers {
			if _, err := b.subs.Add(ctx, chatID, t, ev.interval); err != nil {
				b.log.Error("add subscription failed", "chat_id", chatID, "ticker", t, "err", err)
				b.editTextAndClear(chatID, msgID, "Something went wrong, please try again.")
				return
			}
		}
		b.editTextAndClear(chatID, msgID,
			fmt.Sprintf("✅ Subscribed to %s every %d min.", strings.Join(tickers, ", "), ev.interval))

	case cbDeleteSub:
		if err := b.subs.Delete(ctx, ev.recordID, chatID); err != nil {
			b.log.Error("delete subscription failed", "chat_id", chatID, "id", ev.recordID, "err", err)
			b.editTextAndClear(chatID, msgID, "Something went wrong, please try again.")
			return
		}
		b.editTextAndClear(chatID, msgID, "✅ Subscription deleted. Use /my_subscriptions to refresh.")

	case cbEditSub:
		b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID,
			"Choose a new interval:", intervalKeyboard(ev.recordID)))

	case cbUpdateSub:
		if err := b.subs.UpdateInterval(ctx, ev.recordID, chatID, ev.interval); err != nil {
			b.log.Error("update interval failed", "chat_id", chatID, "id", ev.recordID, "err", err)
			b.editTextAndClear(chatID, msgID, "Something went wrong, please try again.")
			return
		}
		b.editTextAndClear(chatID, msgID,
			fmt.Sprintf("✅ Updated interval to %d min. Use /my_subscriptions to refresh.", ev.interval))
	}
}
