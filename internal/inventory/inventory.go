// Package inventory reads and writes inventory files and provides the
// standard shop stock.
package inventory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/Veraticus/gilded-rose/internal/model"
	"gopkg.in/yaml.v3"
)

// File is the on-disk inventory document.
type File struct {
	Items []Entry `yaml:"items"`
}

// Entry is one item line in an inventory file.
type Entry struct {
	Name    string `yaml:"name"`
	SellIn  int    `yaml:"sell_in"`
	Quality int    `yaml:"quality"`
}

// Load decodes an inventory document from r.
func Load(r io.Reader) ([]model.Item, error) {
	var doc File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, common.ErrEmptyInventory
		}
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidInventory, err)
	}

	if len(doc.Items) == 0 {
		return nil, common.ErrEmptyInventory
	}

	items := make([]model.Item, 0, len(doc.Items))
	for i, entry := range doc.Items {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("%w: item at index %d has no name", common.ErrInvalidInventory, i)
		}
		items = append(items, model.NewItem(entry.Name, entry.SellIn, entry.Quality))
	}

	return items, nil
}

// LoadFile reads an inventory document from path.
func LoadFile(path string) ([]model.Item, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	items, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Write encodes items as an inventory document.
func Write(w io.Writer, items []model.Item) error {
	doc := File{Items: make([]Entry, 0, len(items))}
	for _, item := range items {
		doc.Items = append(doc.Items, Entry{
			Name:    item.Name,
			SellIn:  item.SellIn,
			Quality: item.Quality,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	return enc.Close()
}

// Default returns the shop's standard opening stock.
func Default() []model.Item {
	return []model.Item{
		model.NewItem("+5 Dexterity Vest", 10, 20),
		model.NewItem("Aged Brie", 2, 0),
		model.NewItem("Elixir of the Mongoose", 5, 7),
		model.NewItem("Sulfuras, Hand of Ragnaros", 0, 80),
		model.NewItem("Sulfuras, Hand of Ragnaros", -1, 80),
		model.NewItem("Backstage passes to a TAFKAL80ETC concert", 15, 20),
		model.NewItem("Backstage passes to a TAFKAL80ETC concert", 10, 49),
		model.NewItem("Backstage passes to a TAFKAL80ETC concert", 5, 49),
		model.NewItem("Conjured Mana Cake", 3, 6),
	}
}
