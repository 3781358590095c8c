package service

import (
	"encoding/json"
	"fmt"
	"strings"

	forecasting "retail-insights/internal/features/forecasting/domain"
	orders "retail-insights/internal/features/orders/domain"
)

const insightFormat = `{"reasoning":"string","pricingStrategy":"string","marketingSuggestion":"string","inventorySuggestion":"string"}`

// BuildForecastPrompt asks for commentary on pf. The prompt is deterministic
// for a given forecast so it can serve as a cache key.
func BuildForecastPrompt(pf *forecasting.ProductForecast) string {
	var history strings.Builder
	for _, h := range pf.History {
		fmt.Fprintf(&history, "- %s: %d units sold at an average price of %.2f\n", h.Month, h.UnitsSold, h.Price)
	}

	var projection strings.Builder
	for _, f := range pf.Forecast {
		fmt.Fprintf(&projection, "- %s: %.2f units\n", f.Month, f.Units)
	}

	model := fmt.Sprintf("The forecast was produced with the %s model.", pf.UsedModel)
	if pf.FellBack {
		model = fmt.Sprintf("The %s model was requested but the history is too short for it, so the %s model was used instead. Mention this limitation.",
			pf.RequestedModel, pf.UsedModel)
	}

	return fmt.Sprintf(`You are an expert retail analyst. Comment on a statistical demand forecast for one product.

**Product:** %s

**Monthly sales history:**
%s
**Forecast:**
%s
%s

**Required Output:**
Respond with a single, minified JSON object with exactly this structure and no markdown, backticks or text around it. Keep every field to one or two sentences.

%s
`, pf.Product, history.String(), projection.String(), model, insightFormat)
}

// BuildChatContext frames the support assistant, embedding the matched order if any.
func BuildChatContext(order *orders.Order) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly customer-support assistant for an online retail store. ")
	sb.WriteString("Answer questions about orders, shipping and returns briefly and accurately. ")
	sb.WriteString("Never invent order details you were not given.")

	if order == nil {
		sb.WriteString("\n\nNo order matched the customer's message. If they ask about a specific order, ask for the order ID.")
		return sb.String()
	}

	data, err := json.Marshal(order)
	if err != nil {
		return sb.String()
	}
	sb.WriteString("\n\nThe customer is asking about this order:\n")
	sb.Write(data)
	return sb.String()
}

// extractJSON returns the outermost {...} span of s, or "" when there is none.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}
