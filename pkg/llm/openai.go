package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string, tier Tier) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := openai.ChatModelGPT4oMini
	modelName := "gpt-4o-mini"
	if tier == TierPro {
		model = openai.ChatModelGPT4o
		modelName = "gpt-4o"
	}

	return &OpenAIClient{
		client:    &client,
		model:     model,
		modelName: modelName,
	}
}

func (c *OpenAIClient) ModelName() string {
	return c.modelName
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
