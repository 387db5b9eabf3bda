package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback payloads keep the original wire strings ("sub_stock_AAPL",
// "interval_60", "delete_12", "edit_12", "update_12_60") but are decoded
// exactly once, here, into a closed set of typed events. Nothing past this
// point parses button data.

type callbackKind int

const (
	cbStockPicked callbackKind = iota + 1
	cbIntervalPicked
	cbDeleteSub
	cbEditSub
	cbUpdateSub
)

type callbackEvent struct {
	kind     callbackKind
	ticker   string // cbStockPicked
	interval int    // cbIntervalPicked, cbUpdateSub
	recordID int64  // cbDeleteSub, cbEditSub, cbUpdateSub
}

func parseCallback(data string) (callbackEvent, error) {
	switch {
	case strings.HasPrefix(data, "sub_stock_"):
		ticker := strings.TrimPrefix(data, "sub_stock_")
		if ticker == "" {
			return callbackEvent{}, fmt.Errorf("empty ticker in %q", data)
		}
		return callbackEvent{kind: cbStockPicked, ticker: ticker}, nil

	case strings.HasPrefix(data, "interval_"):
		n, err := strconv.Atoi(strings.TrimPrefix(data, "interval_"))
		if err != nil || n <= 0 {
			return callbackEvent{}, fmt.Errorf("bad interval in %q", data)
		}
		return callbackEvent{kind: cbIntervalPicked, interval: n}, nil

	case strings.HasPrefix(data, "delete_"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "delete_"), 10, 64)
		if err != nil {
			return callbackEvent{}, fmt.Errorf("bad record id in %q", data)
		}
		return callbackEvent{kind: cbDeleteSub, recordID: id}, nil

	case strings.HasPrefix(data, "edit_"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "edit_"), 10, 64)
		if err != nil {
			return callbackEvent{}, fmt.Errorf("bad record id in %q", data)
		}
		return callbackEvent{kind: cbEditSub, recordID: id}, nil

	case strings.HasPrefix(data, "update_"):
		parts := strings.Split(strings.TrimPrefix(data, "update_"), "_")
		if len(parts) != 2 {
			return callbackEvent{}, fmt.Errorf("malformed update in %q", data)
		}
		id, err1 := strconv.ParseInt(parts[0], 10, 64)
		n, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || n <= 0 {
			return callbackEvent{}, fmt.Errorf("malformed update in %q", data)
		}
		return callbackEvent{kind: cbUpdateSub, recordID: id, interval: n}, nil
	}
	return callbackEvent{}, fmt.Errorf("unknown callback %q", data)
}
