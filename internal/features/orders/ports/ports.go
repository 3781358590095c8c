package ports

import (
	"context"

	"retail-insights/internal/features/orders/domain"
)

// OrderFeed retrieves the raw order document from its source.
// This is a Secondary Port (Driven Port).
type OrderFeed interface {
	// Fetch returns the raw response body of the feed.
	// Transport failures and non-2xx responses are returned as errors.
	Fetch(ctx context.Context) ([]byte, error)
}

// OrderRepository holds the current set of valid orders for the session.
type OrderRepository interface {
	// ReplaceAll swaps the stored orders for the given set.
	ReplaceAll(orders []domain.Order)
	// All returns a copy of the stored orders in feed order.
	All() []domain.Order
	// FindByID returns the order with the given id.
	FindByID(id string) (domain.Order, bool)
}
