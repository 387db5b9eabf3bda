// Package scheduler pushes periodic price updates to subscribers.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/rambodazimi/trader-bot/internal/domain/subscriptions"
	"github.com/rambodazimi/trader-bot/internal/infra/metrics"
	"github.com/rambodazimi/trader-bot/internal/quotes"
)

// Lister is the slice of the subscription store the scheduler reads.
type Lister interface {
	ListAll(ctx context.Context) ([]subscriptions.Subscription, error)
}

// Sender delivers one formatted update to a chat.
type Sender interface {
	SendHTML(chatID int64, text string) error
}

const (
	tickPeriod = time.Minute
	startDelay = 10 * time.Second
)

type Scheduler struct {
	store   Lister
	fetcher quotes.Fetcher
	sender  Sender
	log     *slog.Logger

	tick  time.Duration
	delay time.Duration
	now   func() time.Time
}

func New(store Lister, fetcher quotes.Fetcher, sender Sender, log *slog.Logger) *Scheduler {
	return &Scheduler{
		store: store, fetcher: fetcher, sender: sender, log: log,
		tick: tickPeriod, delay: startDelay, now: time.Now,
	}
}

// Run drives periodic dispatch until ctx is cancelled. Scans run one after
// another on this goroutine, so two scans can never overlap; a scan that
// outlives the period simply delays (and may drop) the next tick.
func (s *Scheduler) Run(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.delay):
	}

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	s.log.Info("dispatch scheduler started", "tick", s.tick.String())

	for {
		s.Scan(ctx)
		select {
		case <-ctx.Done():
			s.log.Info("dispatch scheduler stopping")
			return
		case <-ticker.C:
		}
	}
}

// Scan performs one dispatch pass. A subscription is due when the current
// wall-clock minute is divisible by its interval, so same-interval rows fire
// in lockstep at minute boundaries; minutes missed while the process was
// down are never caught up.
func (s *Scheduler) Scan(ctx context.Context) {
	minute := s.now().Unix() / 60

	rows, err := s.store.ListAll(ctx)
	if err != nil {
		s.log.Error("list subscriptions failed", "err", err)
		return
	}

	for _, sub := range rows {
		if sub.IntervalMin <= 0 || minute%int64(sub.IntervalMin) != 0 {
			continue
		}
		q, err := s.fetcher.Fetch(ctx, sub.Ticker)
		if err != nil {
			// no retry this tick; the next due boundary tries again
			metrics.QuoteMisses.Inc()
			continue
		}
		if err := s.sender.SendHTML(sub.ChatID, quotes.Format(sub.Ticker, q.Last, q.Prev)); err != nil {
			metrics.SendFailures.Inc()
			s.log.Error("send update failed", "chat_id", sub.ChatID, "ticker", sub.Ticker, "err", err)
			continue
		}
		metrics.UpdatesSent.Inc()
	}
	metrics.TickScans.Inc()
}
