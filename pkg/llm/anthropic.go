package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string, tier Tier) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	model := anthropic.ModelClaudeHaiku4_5
	modelName := "claude-4.5-haiku"
	if tier == TierPro {
		model = anthropic.ModelClaudeSonnet4_5
		modelName = "claude-4.5-sonnet"
	}

	return &AnthropicClient{
		client:    &client,
		model:     model,
		modelName: modelName,
	}
}

func (c *AnthropicClient) ModelName() string {
	return c.modelName
}

func (c *AnthropicClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return resp.Content[0].Text, nil
}
