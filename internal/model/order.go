package model

import (
	"time"

	"github.com/google/uuid"
)

// Order tracks one customer order's items across four disjoint lists:
// pending, taken (currently being attempted), rejected (pushed back by
// the container engine), and packed (committed). Every item belongs to
// exactly one list at any time.
type Order struct {
	ID        string
	Timestamp time.Time

	Pending  []Item
	Taken    []Item
	Rejected []Item
	Packed   []Item
}

// NewOrder starts an order with an empty pending list.
func NewOrder(id string, ts time.Time) *Order {
	if id == "" {
		id = uuid.New().String()[:8]
	}
	return &Order{ID: id, Timestamp: ts}
}

// AddItem appends an externally supplied item to pending.
func (o *Order) AddItem(it Item) {
	o.Pending = append(o.Pending, it)
}

// AddItems appends a batch of items to pending.
func (o *Order) AddItems(items []Item) {
	o.Pending = append(o.Pending, items...)
}

// TakeItem moves the item at the head of pending into taken, preserving
// order, and returns it. Reports false if pending is empty.
func (o *Order) TakeItem() (Item, bool) {
	if len(o.Pending) == 0 {
		return Item{}, false
	}
	it := o.Pending[0]
	o.Pending = o.Pending[1:]
	o.Taken = append(o.Taken, it)
	return it, true
}

// AddRejected moves item x from pending or taken into rejected.
func (o *Order) AddRejected(x Item) {
	o.Pending = removeItem(o.Pending, x)
	o.Taken = removeItem(o.Taken, x)
	o.Rejected = append(o.Rejected, x)
}

// ResetRejected moves every rejected item back to pending and re-sorts
// pending.
func (o *Order) ResetRejected() {
	o.Pending = append(o.Pending, o.Rejected...)
	o.Rejected = nil
	SortItemsDescending(o.Pending)
}

// ResetAll moves every rejected and taken item back to pending and
// re-sorts pending. Used when a container attempt is rolled back.
func (o *Order) ResetAll() {
	o.Pending = append(o.Pending, o.Rejected...)
	o.Pending = append(o.Pending, o.Taken...)
	o.Rejected = nil
	o.Taken = nil
	SortItemsDescending(o.Pending)
}

// SecurePacked moves every taken item into packed.
func (o *Order) SecurePacked() {
	o.Packed = append(o.Packed, o.Taken...)
	o.Taken = nil
}

// SortPending sorts the pending list per the item comparator.
func (o *Order) SortPending() {
	SortItemsDescending(o.Pending)
}

// TotalEffectiveVolume sums effective volume across pending items (used
// for initial container selection before packing starts).
func (o *Order) TotalEffectiveVolume() float64 {
	var total float64
	for _, it := range o.Pending {
		total += it.EffectiveVolume()
	}
	return total
}

// TotalWeight sums weight across pending items.
func (o *Order) TotalWeight() float64 {
	var total float64
	for _, it := range o.Pending {
		total += it.WeightG
	}
	return total
}

// MaxDimensions returns the component-wise maximum of width/height/length
// across pending items.
func (o *Order) MaxDimensions() [3]float64 {
	var d [3]float64
	for _, it := range o.Pending {
		if it.Width > d[0] {
			d[0] = it.Width
		}
		if it.Height > d[1] {
			d[1] = it.Height
		}
		if it.Length > d[2] {
			d[2] = it.Length
		}
	}
	return d
}

func removeItem(items []Item, x Item) []Item {
	out := items[:0]
	for _, it := range items {
		if it.ID != x.ID {
			out = append(out, it)
		}
	}
	return out
}
