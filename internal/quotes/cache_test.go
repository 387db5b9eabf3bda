package quotes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type countingFetcher struct {
	quote Quote
	err   error
	calls int
}

func (f *countingFetcher) Fetch(context.Context, string) (Quote, error) {
	f.calls++
	if f.err != nil {
		return Quote{}, f.err
	}
	return f.quote, nil
}

func newTestCache(t *testing.T, next Fetcher) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, next), mr
}

func TestCache_ReadThrough(t *testing.T) {
	next := &countingFetcher{quote: Quote{Last: 101, Prev: 100}}
	c, _ := newTestCache(t, next)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		q, err := c.Fetch(ctx, "MSFT")
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if q.Last != 101 || q.Prev != 100 {
			t.Fatalf("fetch %d: got %+v", i, q)
		}
	}
	if next.calls != 1 {
		t.Errorf("provider calls = %d, want 1", next.calls)
	}
}

func TestCache_ExpiresWithTTL(t *testing.T) {
	next := &countingFetcher{quote: Quote{Last: 101, Prev: 100}}
	c, mr := newTestCache(t, next)
	ctx := context.Background()

	if _, err := c.Fetch(ctx, "MSFT"); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(time.Minute)
	if _, err := c.Fetch(ctx, "MSFT"); err != nil {
		t.Fatal(err)
	}
	if next.calls != 2 {
		t.Errorf("provider calls = %d, want 2 after expiry", next.calls)
	}
}

func TestCache_SymbolsAreIndependent(t *testing.T) {
	next := &countingFetcher{quote: Quote{Last: 101, Prev: 100}}
	c, _ := newTestCache(t, next)
	ctx := context.Background()

	if _, err := c.Fetch(ctx, "MSFT"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Fetch(ctx, "AAPL"); err != nil {
		t.Fatal(err)
	}
	if next.calls != 2 {
		t.Errorf("provider calls = %d, want 2 for two symbols", next.calls)
	}
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	next := &countingFetcher{err: ErrUnavailable}
	c, _ := newTestCache(t, next)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := c.Fetch(ctx, "MSFT"); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("fetch %d: err = %v, want ErrUnavailable", i, err)
		}
	}
	if next.calls != 2 {
		t.Errorf("provider calls = %d, want 2 (misses are not cached)", next.calls)
	}
}
