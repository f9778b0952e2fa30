// Package llm wraps the chat completion provider behind a small interface so
// the chat service can be tested without network access.
package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/spinetrack/platform/pkg/common/config"
	"github.com/spinetrack/platform/pkg/common/models"
)

// Client generates an assistant reply for the full message history
// (system prompt + prior turns + latest user message).
type Client interface {
	Chat(ctx context.Context, messages []models.ChatMessage) (string, error)
}

// OpenAIClient calls the OpenAI-compatible chat completion API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClient(cfg.LLMAPIKey),
		model:     cfg.LLMModelName,
		maxTokens: cfg.ChatMaxTokens,
	}
}

func (c *OpenAIClient) Chat(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if c.client == nil {
		return "", errors.New("llm client not initialized")
	}

	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		Temperature: 0.2,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
