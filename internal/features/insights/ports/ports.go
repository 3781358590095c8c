package ports

import (
	"context"
	"errors"
	"time"

	"retail-insights/internal/features/insights/domain"
	orders "retail-insights/internal/features/orders/domain"
)

// ErrNotConfigured is returned by a TextGenerator that has no credentials.
var ErrNotConfigured = errors.New("AI service is not configured")

// TextGenerator defines the secondary port to a generative language model.
type TextGenerator interface {
	// Generate returns the model's answer to a single prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// Chat continues a conversation. system frames the assistant and may be empty.
	Chat(ctx context.Context, system string, history []domain.ChatMessage, message string) (string, error)
}

// InsightRepository defines the secondary port for cached insights.
type InsightRepository interface {
	// Get returns nil, nil when key is not cached.
	Get(ctx context.Context, key string) (*domain.Insight, error)
	Save(ctx context.Context, key string, insight *domain.Insight, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// OrderMatcher finds the order a free-text query refers to.
type OrderMatcher interface {
	MatchOrder(text string) (*orders.Order, bool)
}
