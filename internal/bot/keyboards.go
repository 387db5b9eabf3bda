package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rambodazimi/trader-bot/internal/domain/subscriptions"
)

var popularStocks = []string{"AAPL", "TSLA", "MSFT", "AMZN", "GOOG", "META"}

// The closed interval menu; the store itself accepts any positive interval.
var intervalChoices = []struct {
	label string
	min   int
}{
	{"1 min", 1}, {"30 min", 30}, {"1 h", 60},
	{"6 h", 360}, {"12 h", 720}, {"24 h", 1440},
}

func stockKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(popularStocks))
	for _, s := range popularStocks {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(s, "sub_stock_"+s))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// intervalKeyboard lays the six intervals out in two rows. With recordID 0
// the buttons commit the pending selection ("interval_N"); otherwise they
// retarget an existing row ("update_<id>_N").
func intervalKeyboard(recordID int64) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(intervalChoices))
	for _, c := range intervalChoices {
		data := fmt.Sprintf("interval_%d", c.min)
		if recordID != 0 {
			data = fmt.Sprintf("update_%d_%d", recordID, c.min)
		}
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(c.label, data))
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons[:3], buttons[3:])
}

func subscriptionListKeyboard(subs []subscriptions.Subscription) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Edit "+s.Ticker, fmt.Sprintf("edit_%d", s.ID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Delete", fmt.Sprintf("delete_%d", s.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
