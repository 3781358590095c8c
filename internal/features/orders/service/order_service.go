package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"retail-insights/internal/core/logger"
	"retail-insights/internal/features/orders/domain"
	"retail-insights/internal/features/orders/ports"

	"go.uber.org/zap"
)

// MaxReportedIssues caps how many rejected elements a load keeps for diagnostics.
const MaxReportedIssues = 10

var (
	// ErrOrderNotFound is returned when the order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrFeedUnavailable wraps transport failures of the feed.
	ErrFeedUnavailable = errors.New("order feed unavailable")
	// ErrInvalidFeedJSON is returned when the feed body is not valid JSON.
	ErrInvalidFeedJSON = errors.New("order feed is not valid JSON")
	// ErrFeedNotArray is returned when the feed root is not a JSON array.
	ErrFeedNotArray = errors.New("order feed is not a JSON array")
	// ErrNoValidOrders is returned when a non-empty feed yields no valid order.
	ErrNoValidOrders = errors.New("order feed contains no valid orders")
)

// LoadReport summarizes one feed load.
type LoadReport struct {
	// Total is the number of elements in the feed.
	Total int `json:"total"`
	// Accepted is the number of elements that passed validation.
	Accepted int `json:"accepted"`
	// Skipped is the number of rejected elements.
	Skipped int `json:"skipped"`
	// Issues holds the first MaxReportedIssues rejections.
	Issues []domain.ValidationIssue `json:"issues"`
}

// OrderService loads the order feed and answers lookups against the loaded set.
type OrderService struct {
	feed      ports.OrderFeed
	repo      ports.OrderRepository
	validator *domain.Validator
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(feed ports.OrderFeed, repo ports.OrderRepository) *OrderService {
	return &OrderService{
		feed:      feed,
		repo:      repo,
		validator: domain.NewValidator(),
	}
}

// Load fetches the feed, normalizes and validates every element and replaces the stored set.
// Invalid elements are skipped. The stored set is left untouched when Load fails;
// on ErrNoValidOrders the report of the rejected batch is still returned.
func (s *OrderService) Load(ctx context.Context) (*LoadReport, error) {
	body, err := s.feed.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}

	orders, report, err := s.Parse(body)
	if err != nil {
		return report, err
	}

	s.repo.ReplaceAll(orders)

	logger.Get().Info("Order feed loaded",
		zap.Int("total", report.Total),
		zap.Int("accepted", report.Accepted),
		zap.Int("skipped", report.Skipped),
	)

	return report, nil
}

// Parse turns a raw feed body into valid orders and a report, without touching the store.
func (s *OrderService) Parse(body []byte) ([]domain.Order, *LoadReport, error) {
	var root any
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&root); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFeedJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidFeedJSON)
	}

	elements, ok := root.([]any)
	if !ok {
		return nil, nil, ErrFeedNotArray
	}

	report := &LoadReport{Total: len(elements), Issues: []domain.ValidationIssue{}}
	orders := make([]domain.Order, 0, len(elements))

	for i, el := range elements {
		order := domain.Normalize(el)

		problems := s.validator.Validate(order)
		if problems == nil {
			orders = append(orders, order)
			continue
		}

		report.Skipped++
		if len(report.Issues) < MaxReportedIssues {
			issue := domain.ValidationIssue{Index: i, OrderID: order.ID, Problems: problems}
			report.Issues = append(report.Issues, issue)
			logger.Get().Warn("Skipping invalid order", zap.Stringer("issue", issue))
		}
	}
	report.Accepted = len(orders)

	if report.Total > 0 && report.Accepted == 0 {
		return nil, report, ErrNoValidOrders
	}

	return orders, report, nil
}

// List returns every loaded order.
func (s *OrderService) List() []domain.Order {
	return s.repo.All()
}

// GetOrder retrieves a loaded order by ID.
func (s *OrderService) GetOrder(orderID string) (*domain.Order, error) {
	order, ok := s.repo.FindByID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// MatchOrder finds the loaded order whose id appears in free text.
// Matching is case-insensitive; when several ids occur the longest wins.
func (s *OrderService) MatchOrder(text string) (*domain.Order, bool) {
	haystack := strings.ToLower(text)

	orders := s.repo.All()
	sort.SliceStable(orders, func(i, j int) bool {
		return len(orders[i].ID) > len(orders[j].ID)
	})

	for _, o := range orders {
		if o.ID != "" && strings.Contains(haystack, strings.ToLower(o.ID)) {
			return &o, true
		}
	}
	return nil, false
}
