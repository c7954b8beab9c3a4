package engine

import "github.com/Veraticus/gilded-rose/internal/model"

// AgeItem applies one day of aging to item in place. Quality is computed from
// the sellIn value before that day's decrement.
func AgeItem(item *model.Item) {
	category := model.Classify(item.Name)

	if category == model.CategorySulfuras {
		item.Quality = model.SulfurasQuality
		return
	}

	item.Quality = clampQuality(nextQuality(category, item.SellIn, boundQuality(item.Quality)))
	item.SellIn--
}

// maxDailyChange is the largest quality step any category takes in one day.
const maxDailyChange = 4

// boundQuality pulls quality close enough to the valid range that a daily
// step cannot overflow int. Every result it changes still clamps to the same
// bound.
func boundQuality(quality int) int {
	return min(max(quality, model.MinQuality-maxDailyChange), model.MaxQuality+maxDailyChange)
}

// nextQuality returns the unclamped quality for a non-Sulfuras category.
func nextQuality(category model.Category, sellIn, quality int) int {
	expired := sellIn <= 0

	switch category {
	case model.CategoryAgedBrie:
		if expired {
			return quality + 2
		}
		return quality + 1
	case model.CategoryBackstagePass:
		return backstagePassQuality(sellIn, quality)
	case model.CategoryConjured:
		if expired {
			return quality - 4
		}
		return quality - 2
	default:
		if expired {
			return quality - 2
		}
		return quality - 1
	}
}

// backstagePassQuality drops to zero after the concert instead of adding then
// clamping.
func backstagePassQuality(sellIn, quality int) int {
	switch {
	case sellIn <= 0:
		return 0
	case sellIn < 6:
		return quality + 3
	case sellIn < 11:
		return quality + 2
	default:
		return quality + 1
	}
}

func clampQuality(quality int) int {
	return min(model.MaxQuality, max(quality, model.MinQuality))
}
