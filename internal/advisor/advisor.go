// Package advisor produces educational stock analysis text via an
// OpenAI-compatible chat completion API.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = openai.GPT4o

type Client struct {
	client *openai.Client
	model  string
}

func New(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{client: openai.NewClient(apiKey), model: model}
}

// BuildPrompt frames the analysis request. Subscribed tickers personalize
// the answer; a zero budget means the user gave none.
func BuildPrompt(symbol string, budget float64, subscribed []string) string {
	var sb strings.Builder
	sb.WriteString("You are an educational AI stock analyst.\n\n")
	fmt.Fprintf(&sb, "The user asked for an analysis of %s.\n", symbol)
	if budget > 0 {
		fmt.Fprintf(&sb, "The user has an approximate budget of $%.2f.\n", budget)
	}
	if len(subscribed) > 0 {
		fmt.Fprintf(&sb, "The user is also subscribed to: %s.\n", strings.Join(subscribed, ", "))
	}
	sb.WriteString("\nProvide an educational analysis of trends, volatility, and risk factors. " +
		"Do NOT give direct buy/sell advice; only educational insights.")
	return sb.String()
}

func (c *Client) Analyze(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 500,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
