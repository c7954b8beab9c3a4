// Package model defines the core inventory types shared across the application.
package model

import "fmt"

// Item is a single line of stock. Name is fixed at creation and decides the
// item's Category.
type Item struct {
	Name    string
	SellIn  int
	Quality int
}

// NewItem creates an item with the given starting values.
func NewItem(name string, sellIn, quality int) Item {
	return Item{
		Name:    name,
		SellIn:  sellIn,
		Quality: quality,
	}
}

// Category returns the aging category derived from the item's name.
func (i Item) Category() Category {
	return Classify(i.Name)
}

func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
