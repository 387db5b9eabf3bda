package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TickScans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_tick_scans_total",
		Help: "Completed dispatch scheduler scans.",
	})
	UpdatesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_updates_sent_total",
		Help: "Scheduled price updates delivered.",
	})
	SendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telegram_send_failures_total",
		Help: "Telegram sends that returned an error.",
	})
	QuoteMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quote_fetch_misses_total",
		Help: "Quote fetches that came back unavailable.",
	})
)
