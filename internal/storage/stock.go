package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/Veraticus/gilded-rose/internal/model"
)

// ReplaceStock swaps the whole ledger for items, resets the day counter and
// records each item's starting values as day 0.
func (s *SQLiteStorage) ReplaceStock(ctx context.Context, items []model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItems(items); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, query := range []string{
		`DELETE FROM item_history`,
		`DELETE FROM items`,
		`UPDATE shop_state SET day = 0, updated_at = CURRENT_TIMESTAMP WHERE id = 1`,
	} {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to clear stock: %w", err)
		}
	}

	insertItem, err := tx.PrepareContext(ctx, `
		INSERT INTO items (position, name, sell_in, quality)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare item insert: %w", err)
	}
	defer insertItem.Close()

	insertHistory, err := tx.PrepareContext(ctx, `
		INSERT INTO item_history (item_id, day, sell_in, quality)
		VALUES (?, 0, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare history insert: %w", err)
	}
	defer insertHistory.Close()

	for i, item := range items {
		result, err := insertItem.ExecContext(ctx, i, item.Name, item.SellIn, item.Quality)
		if err != nil {
			return fmt.Errorf("failed to insert item %q: %w", item.Name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get id for item %q: %w", item.Name, err)
		}
		if _, err := insertHistory.ExecContext(ctx, id, item.SellIn, item.Quality); err != nil {
			return fmt.Errorf("failed to record history for item %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stock: %w", err)
	}

	common.LogInfo("Replaced stock", common.Fields{"items": len(items)})
	return nil
}

// GetStock returns every stocked item in shelf order.
func (s *SQLiteStorage) GetStock(ctx context.Context) ([]model.StockItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, position, name, sell_in, quality, updated_at
		FROM items
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}
	defer rows.Close()

	var stock []model.StockItem
	for rows.Next() {
		var item model.StockItem
		if err := rows.Scan(&item.ID, &item.Position, &item.Name, &item.SellIn, &item.Quality, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock item: %w", err)
		}
		stock = append(stock, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock: %w", err)
	}

	common.LogDebug("retrieved stock", common.Fields{"count": len(stock)})
	return stock, nil
}

// GetStockItem returns a single stocked item.
func (s *SQLiteStorage) GetStockItem(ctx context.Context, id int64) (*model.StockItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var item model.StockItem
	err := s.db.QueryRowContext(ctx, `
		SELECT id, position, name, sell_in, quality, updated_at
		FROM items
		WHERE id = ?`, id).Scan(&item.ID, &item.Position, &item.Name, &item.SellIn, &item.Quality, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("stock item %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query stock item: %w", err)
	}

	return &item, nil
}

// CurrentDay returns how many days the ledger has been aged since its stock
// was last replaced.
func (s *SQLiteStorage) CurrentDay(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var day int
	err := s.db.QueryRowContext(ctx, `SELECT day FROM shop_state WHERE id = 1`).Scan(&day)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("shop state missing: %w", common.ErrDatabaseCorrupted)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query current day: %w", err)
	}
	return day, nil
}

// SaveDay writes the aged stock, appends one history row per item and moves
// the day counter to day, all in one transaction.
func (s *SQLiteStorage) SaveDay(ctx context.Context, day int, stock []model.StockItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if day < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDay, day)
	}
	if err := validateStock(stock); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	updateItem, err := tx.PrepareContext(ctx, `
		UPDATE items
		SET sell_in = ?, quality = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare item update: %w", err)
	}
	defer updateItem.Close()

	insertHistory, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO item_history (item_id, day, sell_in, quality)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare history insert: %w", err)
	}
	defer insertHistory.Close()

	for _, item := range stock {
		result, err := updateItem.ExecContext(ctx, item.SellIn, item.Quality, item.ID)
		if err != nil {
			return fmt.Errorf("failed to update item %d: %w", item.ID, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check update of item %d: %w", item.ID, err)
		}
		if affected == 0 {
			return fmt.Errorf("stock item %d: %w", item.ID, common.ErrNotFound)
		}

		if _, err := insertHistory.ExecContext(ctx, item.ID, day, item.SellIn, item.Quality); err != nil {
			return fmt.Errorf("failed to record history for item %d: %w", item.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE shop_state SET day = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1`, day); err != nil {
		return fmt.Errorf("failed to update day counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit day %d: %w", day, err)
	}

	common.LogDebug("saved day", common.Fields{
		"day":   day,
		"items": len(stock),
	})
	return nil
}

// GetHistory returns an item's recorded values, oldest day first.
func (s *SQLiteStorage) GetHistory(ctx context.Context, itemID int64) ([]model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	if _, err := s.GetStockItem(ctx, itemID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, day, sell_in, quality, recorded_at
		FROM item_history
		WHERE item_id = ?
		ORDER BY day`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		if err := rows.Scan(&entry.ItemID, &entry.Day, &entry.SellIn, &entry.Quality, &entry.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return history, nil
}
