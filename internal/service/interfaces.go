// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/gilded-rose/internal/model"
)

// Storage defines the contract for the stock ledger.
type Storage interface {
	// Stock operations
	ReplaceStock(ctx context.Context, items []model.Item) error
	GetStock(ctx context.Context) ([]model.StockItem, error)
	GetStockItem(ctx context.Context, id int64) (*model.StockItem, error)

	// Day tracking
	CurrentDay(ctx context.Context) (int, error)
	SaveDay(ctx context.Context, day int, stock []model.StockItem) error
	GetHistory(ctx context.Context, itemID int64) ([]model.HistoryEntry, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
