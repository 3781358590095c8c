package adapter

import (
	"testing"

	"retail-insights/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	assert.Empty(t, store.All())

	_, ok := store.FindByID("A")
	assert.False(t, ok)

	orders := []domain.Order{
		{ID: "A", CustomerName: "first"},
		{ID: "B"},
		{ID: "A", CustomerName: "duplicate"},
	}
	store.ReplaceAll(orders)

	// the store keeps its own copy
	orders[1].ID = "mutated"

	all := store.All()
	assert.Len(t, all, 3)
	assert.Equal(t, "B", all[1].ID)

	a, ok := store.FindByID("A")
	assert.True(t, ok)
	assert.Equal(t, "first", a.CustomerName)

	store.ReplaceAll(nil)
	assert.Empty(t, store.All())
	_, ok = store.FindByID("B")
	assert.False(t, ok)
}
