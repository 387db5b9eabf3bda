package bot

import (
	"bytes"
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"
)

// exportSubscriptions sends the chat's subscriptions as an xlsx document.
// Duplicate rows are exported as-is.
func (b *Bot) exportSubscriptions(ctx context.Context, chatID int64) {
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

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"ticker", "interval_min", "created_at"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		b.reply(chatID, "Could not build the export file.")
		return
	}

	row := 2
	for _, s := range list {
		excelRow := []interface{}{s.Ticker, s.IntervalMin, s.CreatedAt.Format(time.RFC3339)}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			b.reply(chatID, "Could not build the export file.")
			return
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			b.reply(chatID, "Could not build the export file.")
			return
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		b.reply(chatID, "Could not build the export file.")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("subscriptions_%s.xlsx", time.Now().Format("20060102_150405")),
		Bytes: buf.Bytes(),
	})
	b.send(doc)
}
