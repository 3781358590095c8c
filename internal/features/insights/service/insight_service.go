package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"retail-insights/internal/core/logger"
	forecasting "retail-insights/internal/features/forecasting/domain"
	"retail-insights/internal/features/insights/domain"
	"retail-insights/internal/features/insights/ports"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// MaxChatHistory is how many of the most recent messages are sent with a chat query.
const MaxChatHistory = 6

var (
	// ErrAIServiceFailed wraps any failure of the text generator or its answer.
	ErrAIServiceFailed = errors.New("AI service failed")
	// ErrStaleRequest is returned when a newer request from the same client superseded this one.
	ErrStaleRequest = errors.New("request superseded by a newer one")
	// ErrEmptyQuery is returned for a chat message without text.
	ErrEmptyQuery = errors.New("query must not be empty")
)

// InsightService produces AI commentary on forecasts and answers support chat.
type InsightService struct {
	generator ports.TextGenerator
	repo      ports.InsightRepository
	orders    ports.OrderMatcher
	ttl       time.Duration
	seq       *Sequencer
	validate  *validator.Validate
}

// NewInsightService creates a new InsightService. repo may be nil to disable caching.
func NewInsightService(generator ports.TextGenerator, repo ports.InsightRepository, orders ports.OrderMatcher, ttl time.Duration) *InsightService {
	return &InsightService{
		generator: generator,
		repo:      repo,
		orders:    orders,
		ttl:       ttl,
		seq:       NewSequencer(),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// AnalyzeForecast asks the generator to comment on pf. Answers are cached by prompt.
func (s *InsightService) AnalyzeForecast(ctx context.Context, clientID string, pf *forecasting.ProductForecast) (*domain.Insight, error) {
	ticket := s.seq.Begin(clientID, ChannelForecast)

	prompt := BuildForecastPrompt(pf)
	key := promptKey(prompt)

	insight := s.cached(ctx, key)
	if insight == nil {
		text, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAIServiceFailed, err)
		}

		insight, err = s.parseInsight(text)
		if err != nil {
			logger.Get().Warn("Unusable insight from AI",
				zap.String("product", pf.Product),
				zap.String("raw", text),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %w", ErrAIServiceFailed, err)
		}
		s.store(ctx, key, insight)
	}

	if !ticket.Current() {
		return nil, ErrStaleRequest
	}
	return insight, nil
}

// Chat answers a support query, giving the assistant the order the query mentions.
func (s *InsightService) Chat(ctx context.Context, clientID, query string, history []domain.ChatMessage) (*domain.ChatReply, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	for _, m := range history {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	ticket := s.seq.Begin(clientID, ChannelChat)

	order, _ := s.orders.MatchOrder(query)
	if len(history) > MaxChatHistory {
		history = history[len(history)-MaxChatHistory:]
	}

	reply, err := s.generator.Chat(ctx, BuildChatContext(order), history, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAIServiceFailed, err)
	}

	if !ticket.Current() {
		return nil, ErrStaleRequest
	}
	return &domain.ChatReply{Reply: reply, Order: order}, nil
}

func (s *InsightService) parseInsight(text string) (*domain.Insight, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, errors.New("no JSON object in response")
	}

	var insight domain.Insight
	if err := json.Unmarshal([]byte(raw), &insight); err != nil {
		return nil, fmt.Errorf("failed to parse insight: %w", err)
	}
	if err := s.validate.Struct(insight); err != nil {
		return nil, fmt.Errorf("incomplete insight: %w", err)
	}
	return &insight, nil
}

// cached returns nil on a miss or when caching is disabled or unavailable.
func (s *InsightService) cached(ctx context.Context, key string) *domain.Insight {
	if s.repo == nil {
		return nil
	}
	insight, err := s.repo.Get(ctx, key)
	if err != nil {
		logger.Get().Warn("Insight cache read failed", zap.Error(err))
		return nil
	}
	if insight == nil {
		return nil
	}
	if err := s.validate.Struct(insight); err != nil {
		logger.Get().Warn("Dropping incomplete cached insight", zap.String("key", key), zap.Error(err))
		if err := s.repo.Delete(ctx, key); err != nil {
			logger.Get().Warn("Insight cache delete failed", zap.Error(err))
		}
		return nil
	}
	logger.Get().Debug("Insight cache hit", zap.String("key", key))
	return insight
}

func (s *InsightService) store(ctx context.Context, key string, insight *domain.Insight) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, key, insight, s.ttl); err != nil {
		logger.Get().Warn("Insight cache write failed", zap.Error(err))
	}
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
