package bot

import "testing"

func TestParseCallback(t *testing.T) {
	cases := []struct {
		data string
		want callbackEvent
	}{
		{"sub_stock_AAPL", callbackEvent{kind: cbStockPicked, ticker: "AAPL"}},
		{"interval_60", callbackEvent{kind: cbIntervalPicked, interval: 60}},
		{"interval_1440", callbackEvent{kind: cbIntervalPicked, interval: 1440}},
		{"delete_12", callbackEvent{kind: cbDeleteSub, recordID: 12}},
		{"edit_7", callbackEvent{kind: cbEditSub, recordID: 7}},
		{"update_12_360", callbackEvent{kind: cbUpdateSub, recordID: 12, interval: 360}},
	}
	for _, tc := range cases {
		t.Run(tc.data, func(t *testing.T) {
			got, err := parseCallback(tc.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseCallback_Rejects(t *testing.T) {
	bad := []string{
		"",
		"sub_stock_",
		"interval_",
		"interval_abc",
		"interval_0",
		"interval_-5",
		"delete_abc",
		"edit_",
		"update_12",
		"update_12_",
		"update__60",
		"update_12_0",
		"update_12_60_9",
		"something_else",
	}
	for _, data := range bad {
		if _, err := parseCallback(data); err == nil {
			t.Errorf("parseCallback(%q) should fail", data)
		}
	}
}
