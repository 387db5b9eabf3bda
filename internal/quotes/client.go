// Package quotes fetches and formats stock price samples.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// ErrUnavailable covers every way a quote can be missing: provider errors,
// malformed payloads, fewer than two samples, or a timed-out call.
var ErrUnavailable = errors.New("quotes: unavailable")

// Quote is the ephemeral price pair for one ticker. Prev is always non-zero
// when a Quote is returned without error.
type Quote struct {
	Last float64 `json:"last"`
	Prev float64 `json:"prev"`
}

type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (Quote, error)
}

const defaultBaseURL = "https://www.alphavantage.co"

// Client pulls the last two hourly closes from the Alpha Vantage intraday
// series.
type Client struct {
	httpc   *http.Client
	apiKey  string
	baseURL string
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpc:   &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

type intradayResponse struct {
	Series map[string]struct {
		Close string `json:"4. close"`
	} `json:"Time Series (60min)"`
}

func (c *Client) Fetch(ctx context.Context, symbol string) (Quote, error) {
	u := fmt.Sprintf("%s/query?function=TIME_SERIES_INTRADAY&symbol=%s&interval=60min&apikey=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("build quote request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Quote{}, ErrUnavailable
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return Quote{}, ErrUnavailable
	}

	var parsed intradayResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Quote{}, ErrUnavailable
	}
	if len(parsed.Series) < 2 {
		return Quote{}, ErrUnavailable
	}

	// Timestamps sort lexicographically ("2026-01-02 15:00:00"), so the
	// newest two samples are the first two keys in reverse order.
	keys := make([]string, 0, len(parsed.Series))
	for k := range parsed.Series {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	last, err1 := strconv.ParseFloat(parsed.Series[keys[0]].Close, 64)
	prev, err2 := strconv.ParseFloat(parsed.Series[keys[1]].Close, 64)
	if err1 != nil || err2 != nil || prev == 0 {
		return Quote{}, ErrUnavailable
	}
	return Quote{Last: last, Prev: prev}, nil
}
