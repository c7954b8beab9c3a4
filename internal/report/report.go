// Package report renders inventory snapshots in the plain-text day format
// used for approval testing and the simulate command.
package report

import (
	"fmt"
	"io"

	"github.com/Veraticus/gilded-rose/internal/engine"
	"github.com/Veraticus/gilded-rose/internal/model"
)

// Header is the column line printed under every day banner.
const Header = "name, sellIn, quality"

// WriteDay writes one day's banner, header and item lines followed by a blank line.
func WriteDay(w io.Writer, day int, items []model.Item) error {
	if _, err := fmt.Fprintf(w, "-------- day %d --------\n%s\n", day, Header); err != nil {
		return fmt.Errorf("failed to write day %d header: %w", day, err)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return fmt.Errorf("failed to write item %q: %w", item.Name, err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write day %d footer: %w", day, err)
	}
	return nil
}

// Simulate prints the starting stock as day 0 and then each of the following
// days, aging the inventory once per day.
func Simulate(w io.Writer, items []model.Item, days int) error {
	e := engine.New(items)

	if err := WriteDay(w, 0, e.Items()); err != nil {
		return err
	}
	for day := 1; day <= days; day++ {
		e.AdvanceOneDay()
		if err := WriteDay(w, day, e.Items()); err != nil {
			return err
		}
	}
	return nil
}
