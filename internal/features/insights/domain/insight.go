package domain

import (
	"errors"

	forecasting "retail-insights/internal/features/forecasting/domain"
	orders "retail-insights/internal/features/orders/domain"
)

// ChatRole is the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ErrInvalidRole is returned for a chat message that is neither user nor assistant.
var ErrInvalidRole = errors.New("chat role must be user or assistant")

// Insight is the AI commentary on a product forecast.
type Insight struct {
	Reasoning           string `json:"reasoning" validate:"required"`
	PricingStrategy     string `json:"pricingStrategy" validate:"required"`
	MarketingSuggestion string `json:"marketingSuggestion" validate:"required"`
	InventorySuggestion string `json:"inventorySuggestion" validate:"required"`
}

// ForecastInsight pairs a forecast with its commentary.
type ForecastInsight struct {
	Forecast *forecasting.ProductForecast `json:"forecast"`
	Insight  *Insight                     `json:"insight"`
}

// ChatMessage is one turn of a support conversation.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// Validate checks the message role.
func (m ChatMessage) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return ErrInvalidRole
	}
	return nil
}

// ChatReply is the assistant's answer, with the order the query referred to if any.
type ChatReply struct {
	Reply string        `json:"reply"`
	Order *orders.Order `json:"order,omitempty"`
}
