package llm

import (
	"context"
	"net/http"

	"github.com/Harshitk-cp/guestchat/internal/domain"
)

const (
	cerebrasAPIURL = "https://api.cerebras.ai/v1/chat/completions"
	cerebrasModel  = "llama-3.3-70b"
)

// CerebrasClient talks to Cerebras' OpenAI-compatible chat endpoint.
type CerebrasClient struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

func NewCerebrasClient(apiKey string) *CerebrasClient {
	return &CerebrasClient{
		apiKey:     apiKey,
		url:        cerebrasAPIURL,
		httpClient: &http.Client{},
	}
}

func (c *CerebrasClient) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	return completeChat(ctx, c.httpClient, "cerebras", c.url, c.apiKey, chatRequest{
		Model:       modelOr(opts, cerebrasModel),
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: opts.Temperature,
	})
}
