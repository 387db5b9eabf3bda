package advisor

import (
	"strings"
	"testing"
)

func TestBuildPrompt_Minimal(t *testing.T) {
	p := BuildPrompt("AAPL", 0, nil)
	if !strings.Contains(p, "analysis of AAPL") {
		t.Errorf("prompt missing symbol: %q", p)
	}
	if strings.Contains(p, "budget") {
		t.Errorf("zero budget should be omitted: %q", p)
	}
	if strings.Contains(p, "also subscribed") {
		t.Errorf("empty subscriptions should be omitted: %q", p)
	}
	if !strings.Contains(p, "Do NOT give direct buy/sell advice") {
		t.Errorf("prompt missing the educational guard: %q", p)
	}
}

func TestBuildPrompt_WithBudgetAndSubscriptions(t *testing.T) {
	p := BuildPrompt("TSLA", 2500.5, []string{"AAPL", "MSFT"})
	if !strings.Contains(p, "budget of $2500.50") {
		t.Errorf("budget not rendered: %q", p)
	}
	if !strings.Contains(p, "also subscribed to: AAPL, MSFT") {
		t.Errorf("subscriptions not rendered: %q", p)
	}
}

func TestNew_DefaultModel(t *testing.T) {
	c := New("key", "")
	if c.model != defaultModel {
		t.Errorf("model = %q, want default %q", c.model, defaultModel)
	}
	c = New("key", "gpt-4o-mini")
	if c.model != "gpt-4o-mini" {
		t.Errorf("model = %q, want override", c.model)
	}
}
