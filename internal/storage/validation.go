package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/gilded-rose/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrEmptySlice   = errors.New("slice cannot be empty")
	ErrInvalidItem  = errors.New("invalid item")
	ErrNegativeDay  = errors.New("day cannot be negative")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateItems checks a new stock list before it replaces the ledger.
func validateItems(items []model.Item) error {
	if items == nil {
		return fmt.Errorf("%w: items", ErrNilParameter)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: items", ErrEmptySlice)
	}
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item at index %d has no name", ErrInvalidItem, i)
		}
	}
	return nil
}

// validateStock checks ledger rows before a day is saved.
func validateStock(stock []model.StockItem) error {
	if stock == nil {
		return fmt.Errorf("%w: stock", ErrNilParameter)
	}
	for i, s := range stock {
		if s.ID <= 0 {
			return fmt.Errorf("%w: stock item at index %d has no id", ErrInvalidItem, i)
		}
	}
	return nil
}
