package domain

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// dateLength is the length of a YYYY-MM-DD date; longer values carry a time part.
const dateLength = 10

// Normalize coerces one untyped feed element into an Order.
// Every field is forced to its primitive type before validation:
//   - strings via cast.ToString; null, objects and arrays become ""
//   - numbers via cast.ToFloat64E; failures, NaN and infinities become 0
//   - dates are string-coerced and cut to their first 10 characters
//   - items that are not an array become an empty list
//
// Normalize never fails; a non-object element yields a zero Order.
func Normalize(raw any) Order {
	doc, _ := raw.(map[string]any)

	return Order{
		ID:                toString(doc["id"]),
		CustomerName:      toString(doc["customerName"]),
		OrderDate:         toDate(doc["orderDate"]),
		Status:            OrderStatus(toString(doc["status"])),
		Items:             toItems(doc["items"]),
		EstimatedDelivery: toDate(doc["estimatedDelivery"]),
		TotalOrderValue:   toNumber(doc["totalOrderValue"]),
		ReturnPolicy:      toString(doc["returnPolicy"]),
	}
}

func toItems(raw any) []OrderItem {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	items := make([]OrderItem, 0, len(list))
	for _, el := range list {
		doc, _ := el.(map[string]any)
		items = append(items, OrderItem{
			Name:      toString(doc["name"]),
			Category:  toString(doc["category"]),
			UnitPrice: toNumber(doc["unitPrice"]),
			Quantity:  int(math.Trunc(toNumber(doc["quantity"]))),
			Total:     toNumber(doc["total"]),
		})
	}
	return items
}

func toString(v any) string {
	switch v.(type) {
	case nil, map[string]any, []any:
		return ""
	}
	return cast.ToString(v)
}

func toNumber(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func toDate(v any) string {
	s := []rune(toString(v))
	if len(s) > dateLength {
		s = s[:dateLength]
	}
	return string(s)
}
