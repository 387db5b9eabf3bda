// Package selection holds the tickers a chat has picked but not yet
// committed to an interval. The state is process-local on purpose: losing
// it on restart only means the user starts the pick flow again.
package selection

import "sync"

type Tracker struct {
	mu      sync.Mutex
	pending map[int64][]string
}

func NewTracker() *Tracker {
	return &Tracker{pending: make(map[int64][]string)}
}

// Append records one more picked ticker for the chat and returns a snapshot
// of everything picked so far, in pick order.
func (t *Tracker) Append(chatID int64, ticker string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[chatID] = append(t.pending[chatID], ticker)
	return append([]string(nil), t.pending[chatID]...)
}

// TakeAndClear atomically removes and returns the chat's pending tickers.
// A second call returns nothing until the chat picks again, so a stale
// interval press cannot re-submit tickers that were already committed.
func (t *Tracker) TakeAndClear(chatID int64) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.pending[chatID]
	delete(t.pending, chatID)
	return out
}
