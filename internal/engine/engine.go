// Package engine implements the daily aging engine for shop inventory.
package engine

import (
	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/Veraticus/gilded-rose/internal/model"
)

// AgingEngine owns an ordered inventory and ages it one day at a time.
type AgingEngine struct {
	items []model.Item
	day   int
}

// New creates an aging engine holding a copy of the given items.
func New(items []model.Item) *AgingEngine {
	owned := make([]model.Item, len(items))
	copy(owned, items)
	return &AgingEngine{items: owned}
}

// AdvanceOneDay ages every item by a single day, in order.
func (e *AgingEngine) AdvanceOneDay() {
	for i := range e.items {
		AgeItem(&e.items[i])
	}
	e.day++

	common.LogDebug("advanced inventory", common.Fields{
		"day":   e.day,
		"items": len(e.items),
	})
}

// Advance ages the inventory by the given number of days. Zero or negative
// values leave the inventory untouched.
func (e *AgingEngine) Advance(days int) {
	for i := 0; i < max(days, 0); i++ {
		e.AdvanceOneDay()
	}
}

// Items returns a copy of the current inventory in its original order.
func (e *AgingEngine) Items() []model.Item {
	out := make([]model.Item, len(e.items))
	copy(out, e.items)
	return out
}

// Item returns the item at position i.
func (e *AgingEngine) Item(i int) model.Item {
	return e.items[i]
}

// Len returns the number of items held.
func (e *AgingEngine) Len() int {
	return len(e.items)
}

// Day returns how many days this engine has advanced since it was created.
func (e *AgingEngine) Day() int {
	return e.day
}
