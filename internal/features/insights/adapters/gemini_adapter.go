package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"retail-insights/internal/core/config"
	"retail-insights/internal/features/insights/domain"
	"retail-insights/internal/features/insights/ports"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("no text content received from AI")

// GeminiAdapter implements ports.TextGenerator with Google's Gemini API.
type GeminiAdapter struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiAdapter creates a Gemini client for cfg. Call Close when done.
func NewGeminiAdapter(ctx context.Context, cfg config.GeminiConfig) (*GeminiAdapter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAdapter{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Generate sends a single prompt and asks for a JSON answer.
func (g *GeminiAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return responseText(resp)
}

// Chat replays history into a chat session and sends message.
func (g *GeminiAdapter) Chat(ctx context.Context, system string, history []domain.ChatMessage, message string) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	cs := model.StartChat()
	for _, m := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  geminiRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini chat: %w", err)
	}
	return responseText(resp)
}

// geminiRole maps a chat role to Gemini's "user" and "model" roles.
func geminiRole(r domain.ChatRole) string {
	if r == domain.RoleAssistant {
		return "model"
	}
	return "user"
}

// Close releases the underlying client.
func (g *GeminiAdapter) Close() error {
	return g.client.Close()
}

func (g *GeminiAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

// UnconfiguredGenerator stands in for Gemini when no API key is set.
type UnconfiguredGenerator struct{}

// Generate implements ports.TextGenerator.
func (UnconfiguredGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ports.ErrNotConfigured
}

// Chat implements ports.TextGenerator.
func (UnconfiguredGenerator) Chat(ctx context.Context, system string, history []domain.ChatMessage, message string) (string, error) {
	return "", ports.ErrNotConfigured
}
