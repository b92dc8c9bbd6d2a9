package geminichat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// geminiClient talks to the Gemini API. Replies are buffered; the session
// falls back to Complete when streaming is requested.
type geminiClient struct {
	client *genai.Client
	cfg    Config
}

func newGeminiClient(ctx context.Context, cfg Config) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiClient{client: client, cfg: cfg}, nil
}

func (c *geminiClient) generateConfig(messages []Message) (*genai.GenerateContentConfig, []*genai.Content, error) {
	config := &genai.GenerateContentConfig{}
	if c.cfg.Temperature != nil {
		config.Temperature = genai.Ptr(float32(*c.cfg.Temperature))
	}
	if c.cfg.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(c.cfg.MaxOutputTokens)
	}

	contents := make([]*genai.Content, 0, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			// Gemini takes the system prompt out of band.
			config.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case RoleUser:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			return nil, nil, fmt.Errorf("invalid message role at index %d: %q", i, msg.Role)
		}
	}
	return config, contents, nil
}

// Complete sends the conversation so far and returns the model reply text.
func (c *geminiClient) Complete(ctx context.Context, messages []Message) (string, error) {
	config, contents, err := c.generateConfig(messages)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty gemini response")
	}
	return text, nil
}
