package model

import "strings"

// Category selects which daily aging rule applies to an item.
type Category string

const (
	// CategoryNormal loses quality every day, twice as fast once expired.
	CategoryNormal Category = "normal"
	// CategoryAgedBrie gains quality with age.
	CategoryAgedBrie Category = "aged_brie"
	// CategorySulfuras is legendary: it never ages and its quality is always 80.
	CategorySulfuras Category = "sulfuras"
	// CategoryBackstagePass gains quality as the concert approaches and is worthless after it.
	CategoryBackstagePass Category = "backstage_pass"
	// CategoryConjured degrades twice as fast as normal items.
	CategoryConjured Category = "conjured"
)

// Name prefixes and exact names used for classification.
const (
	SulfurasPrefix      = "Sulfuras"
	AgedBrieName        = "Aged Brie"
	BackstagePassPrefix = "Backstage passes"
	ConjuredPrefix      = "Conjured"
)

// Quality limits.
const (
	MinQuality      = 0
	MaxQuality      = 50
	SulfurasQuality = 80
)

// Classify maps an item name to its category. The first matching rule wins.
func Classify(name string) Category {
	switch {
	case strings.HasPrefix(name, SulfurasPrefix):
		return CategorySulfuras
	case name == AgedBrieName:
		return CategoryAgedBrie
	case strings.HasPrefix(name, BackstagePassPrefix):
		return CategoryBackstagePass
	case strings.HasPrefix(name, ConjuredPrefix):
		return CategoryConjured
	default:
		return CategoryNormal
	}
}

// Categories returns every category in classification order.
func Categories() []Category {
	return []Category{
		CategorySulfuras,
		CategoryAgedBrie,
		CategoryBackstagePass,
		CategoryConjured,
		CategoryNormal,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryNormal:
		return "Normal"
	case CategoryAgedBrie:
		return "Aged Brie"
	case CategorySulfuras:
		return "Sulfuras"
	case CategoryBackstagePass:
		return "Backstage Pass"
	case CategoryConjured:
		return "Conjured"
	default:
		return string(c)
	}
}
