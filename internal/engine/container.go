package engine

import "github.com/piwi3910/cratepack/internal/model"

// PackOrder drains order's pending list into cr: oversized items go to
// cr.Oversized, items that fit in principle but found no room go to
// cr.Leftover, everything else lands in a committed placement. Items
// move pending -> taken -> rejected (oversized/leftover) or stay taken
// (successfully placed, pending the caller's commit/rollback decision).
func PackOrder(cr *model.ContainerResult, order *model.Order) {
	for {
		item, ok := order.TakeItem()
		if !ok {
			return
		}

		if cr.Container.IsOversizedFor(item) {
			cr.Oversized = append(cr.Oversized, item)
			order.AddRejected(item)
			continue
		}

		committed := cr.AllPlacements()
		placed := false
		for _, layer := range cr.Layers {
			if TryPlace(layer, item, cr.Container.IsXXS(), cr.Container.Width, cr.Container.Height, cr.Container.Length, committed) {
				placed = true
				break
			}
		}

		if !placed {
			yTop := cr.StackedHeight()
			minDim := minOf3(item.Width, item.Height, item.Length)
			if cr.Container.Height-yTop >= minDim {
				newLayer := model.NewLayer(yTop, cr.Container.Width, cr.Container.Height, cr.Container.Length)
				if TryPlace(newLayer, item, cr.Container.IsXXS(), cr.Container.Width, cr.Container.Height, cr.Container.Length, committed) {
					cr.Layers = append(cr.Layers, newLayer)
					placed = true
				}
			}
		}

		if !placed {
			cr.Leftover = append(cr.Leftover, item)
			order.AddRejected(item)
		}
	}
}
