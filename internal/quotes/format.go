package quotes

import "fmt"

// Format renders a directional price message in Telegram HTML mode.
// A zero change lands on the "down" branch: the check is strictly > 0.
func Format(ticker string, last, prev float64) string {
	change := last - prev
	pct := change / prev * 100
	arrow, dot := "📉", "🔴"
	if change > 0 {
		arrow, dot = "📈", "🟩"
	}
	return fmt.Sprintf(
		"<b>%s %s</b>\n<b>Price:</b> <code>$%.2f</code>\n<b>Change:</b> %s %+.2f (%+.2f%%)",
		arrow, ticker, last, dot, change, pct,
	)
}
