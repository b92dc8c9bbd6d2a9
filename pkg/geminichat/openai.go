package geminichat

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAIClient talks to the OpenAI chat-completions API, or any
// OpenAI-compatible endpoint selected through BaseURL.
type openAIClient struct {
	client openai.Client
	cfg    Config
}

func newOpenAIClient(cfg Config) *openAIClient {
	opts := []option.RequestOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return &openAIClient{
		client: openai.NewClient(opts...),
		cfg:    cfg,
	}
}

func (c *openAIClient) params(messages []Message) (openai.ChatCompletionNewParams, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleUser:
			out = append(out, openai.UserMessage(msg.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			return openai.ChatCompletionNewParams{}, fmt.Errorf("invalid message role at index %d: %q", i, msg.Role)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.cfg.Model),
		Messages: out,
	}
	if c.cfg.Temperature != nil {
		params.Temperature = openai.Float(*c.cfg.Temperature)
	}
	if c.cfg.MaxOutputTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(c.cfg.MaxOutputTokens))
	}
	return params, nil
}

// Complete sends one non-streaming chat completion request.
func (c *openAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	params, err := c.params(messages)
	if err != nil {
		return "", err
	}
	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// CompleteStream streams reply deltas to w and returns the accumulated text.
func (c *openAIClient) CompleteStream(ctx context.Context, messages []Message, w io.Writer) (string, error) {
	params, err := c.params(messages)
	if err != nil {
		return "", err
	}
	if w == nil {
		w = io.Discard
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)
	defer stream.Close()

	acc := openai.ChatCompletionAccumulator{}
	for stream.Next() {
		chunk := stream.Current()
		if !acc.AddChunk(chunk) {
			return "", errors.New("failed to accumulate stream")
		}
		if len(chunk.Choices) > 0 {
			delta := chunk.Choices[0].Delta
			if delta.Content != "" {
				_, _ = io.WriteString(w, delta.Content)
			}
		}
	}
	if err := stream.Err(); err != nil {
		return "", err
	}
	if len(acc.Choices) == 0 {
		return "", errors.New("empty streamed completion choices")
	}
	return acc.Choices[0].Message.Content, nil
}
