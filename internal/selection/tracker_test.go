package selection

import (
	"fmt"
	"sync"
	"testing"
)

func TestAppendAndTake(t *testing.T) {
	tr := NewTracker()

	got := tr.Append(1, "AAPL")
	if len(got) != 1 || got[0] != "AAPL" {
		t.Fatalf("after first pick: %v", got)
	}
	got = tr.Append(1, "TSLA")
	if len(got) != 2 || got[0] != "AAPL" || got[1] != "TSLA" {
		t.Fatalf("after second pick: %v", got)
	}

	taken := tr.TakeAndClear(1)
	if len(taken) != 2 || taken[0] != "AAPL" || taken[1] != "TSLA" {
		t.Fatalf("taken = %v, want [AAPL TSLA]", taken)
	}
	if again := tr.TakeAndClear(1); len(again) != 0 {
		t.Fatalf("second take should be empty, got %v", again)
	}
}

func TestSameTickerTwiceKeptInOrder(t *testing.T) {
	tr := NewTracker()
	tr.Append(1, "AAPL")
	tr.Append(1, "AAPL")

	taken := tr.TakeAndClear(1)
	if len(taken) != 2 || taken[0] != "AAPL" || taken[1] != "AAPL" {
		t.Fatalf("taken = %v, want AAPL twice", taken)
	}
}

func TestChatsDoNotLeak(t *testing.T) {
	tr := NewTracker()
	tr.Append(1, "AAPL")
	tr.Append(2, "TSLA")

	if got := tr.TakeAndClear(1); len(got) != 1 || got[0] != "AAPL" {
		t.Fatalf("chat 1 got %v", got)
	}
	if got := tr.TakeAndClear(2); len(got) != 1 || got[0] != "TSLA" {
		t.Fatalf("chat 2 got %v", got)
	}
}

func TestConcurrentChats(t *testing.T) {
	tr := NewTracker()
	const chats, picks = 20, 50

	var wg sync.WaitGroup
	for c := 0; c < chats; c++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			for i := 0; i < picks; i++ {
				tr.Append(chatID, fmt.Sprintf("T%d", i))
			}
		}(int64(c))
	}
	wg.Wait()

	for c := 0; c < chats; c++ {
		taken := tr.TakeAndClear(int64(c))
		if len(taken) != picks {
			t.Fatalf("chat %d has %d picks, want %d", c, len(taken), picks)
		}
		for i, ticker := range taken {
			if ticker != fmt.Sprintf("T%d", i) {
				t.Fatalf("chat %d pick %d = %s, order lost", c, i, ticker)
			}
		}
	}
}

func TestAppendReturnsSnapshot(t *testing.T) {
	tr := NewTracker()
	snap := tr.Append(1, "AAPL")
	snap[0] = "HACK"

	if taken := tr.TakeAndClear(1); taken[0] != "AAPL" {
		t.Fatalf("internal state mutated through snapshot: %v", taken)
	}
}
