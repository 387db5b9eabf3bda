package subscriptions

import "time"

// Subscription is one (chat, ticker, interval) row. The same chat may hold
// several rows for the same ticker; rows are never deduplicated.
type Subscription struct {
	ID          int64
	ChatID      int64
	Ticker      string
	IntervalMin int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
