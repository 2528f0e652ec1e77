package model

import "github.com/google/uuid"

// Item is an immutable cuboidal object to be packed. Dimensions are kept
// in their original input order; unlike Container, Item never reorders
// them.
type Item struct {
	ID       string
	Width    float64
	Height   float64
	Length   float64
	WeightG  float64
	FitRatio float64 // percent, (0, 100]
	Location string
}

// NewItem constructs an Item, assigning a short stable ID if one is not
// supplied.
func NewItem(id string, w, h, l, weightG, fitRatio float64, location string) Item {
	if id == "" {
		id = uuid.New().String()[:8]
	}
	return Item{
		ID:       id,
		Width:    w,
		Height:   h,
		Length:   l,
		WeightG:  weightG,
		FitRatio: fitRatio,
		Location: location,
	}
}

// Volume is the raw geometric volume, ignoring fit ratio.
func (it Item) Volume() float64 {
	return it.Width * it.Height * it.Length
}

// EffectiveVolume shrinks nominal volume by the fit ratio.
func (it Item) EffectiveVolume() float64 {
	return it.Volume() * it.FitRatio / 100.0
}

// DimensionSum is the primary sort key: sum of original dimensions.
func (it Item) DimensionSum() float64 {
	return it.Width + it.Height + it.Length
}

// sortedDimensionsDesc returns width/height/length sorted descending, used
// by the oversized test in the container engine.
func (it Item) sortedDimensionsDesc() [3]float64 {
	d := [3]float64{it.Width, it.Height, it.Length}
	if d[0] < d[1] {
		d[0], d[1] = d[1], d[0]
	}
	if d[1] < d[2] {
		d[1], d[2] = d[2], d[1]
	}
	if d[0] < d[1] {
		d[0], d[1] = d[1], d[0]
	}
	return d
}

// Less implements the item comparator used to sort an order's pending
// list descending: dimension sum, then effective volume, then weight.
// Two items with the same identifier are never less than each other.
func Less(a, b Item) bool {
	if a.ID == b.ID {
		return false
	}
	if a.DimensionSum() != b.DimensionSum() {
		return a.DimensionSum() > b.DimensionSum()
	}
	if a.EffectiveVolume() != b.EffectiveVolume() {
		return a.EffectiveVolume() > b.EffectiveVolume()
	}
	return a.WeightG > b.WeightG
}

// SortItemsDescending sorts items in place per the comparator above,
// stable in the secondary and tertiary keys.
func SortItemsDescending(items []Item) {
	stableSort(items, Less)
}
