/*
Package openaiservice wraps the OpenAI chat-completions API behind a small
client the handlers can depend on. The client is constructed once at startup
and is read-only afterwards; a keyless process still gets a client, it just
refuses to generate.
*/
package openaiservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned by Generate when the process started without
// an OPENAI_API_KEY. Callers map it to a configuration error so operators can
// tell "misconfigured" from "upstream is down".
var ErrNotConfigured = errors.New("OpenAI client not initialized (OPENAI_API_KEY missing)")

// Client is the process-wide OpenAI handle.
type Client struct {
	api *openai.Client
}

// New builds a Client. An empty key is allowed: the server must still start
// and serve pages, so we log a warning and return a disabled client.
func New(apiKey string) *Client {
	if apiKey == "" {
		log.Warn().Msg("OPENAI_API_KEY not found in environment. OpenAI features will be disabled until set.")
		return &Client{}
	}
	return &Client{api: openai.NewClient(apiKey)}
}

// Configured reports whether a credential was present at startup.
func (c *Client) Configured() bool {
	return c != nil && c.api != nil
}

// Generate sends one system+user chat completion and returns the assistant
// text. The call is awaited and never retried; failures carry the upstream
// error for the caller to surface.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt, model string, temperature float32, maxTokens int) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		// Unexpected response shape. Hand back a rendering of the whole
		// object instead of failing so the raw payload stays inspectable.
		log.Warn().Str("model", model).Msg("OpenAI response contained no choices")
		return fmt.Sprintf("%+v", resp), nil
	}

	return resp.Choices[0].Message.Content, nil
}
