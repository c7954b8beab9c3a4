package model

import "time"

// StockItem is an item held in the stock ledger.
type StockItem struct {
	UpdatedAt time.Time
	Item
	ID       int64
	Position int
}

// HistoryEntry records an item's values at the end of a simulated day.
type HistoryEntry struct {
	RecordedAt time.Time
	ItemID     int64
	Day        int
	SellIn     int
	Quality    int
}

// Items strips ledger metadata, keeping stock order.
func Items(stock []StockItem) []Item {
	items := make([]Item, len(stock))
	for i, s := range stock {
		items[i] = s.Item
	}
	return items
}
