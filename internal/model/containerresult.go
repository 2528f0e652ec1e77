package model

// ContainerResult holds the outcome of packing some items into one
// container instance: its layers in creation order, and the items it
// refused. Oversized items cannot fit in any orientation; leftover
// items fit in principle but no space was found for them.
type ContainerResult struct {
	ID        string
	Container Container
	Layers    []*Layer
	Oversized []Item
	Leftover  []Item
}

// NewContainerResult starts an empty result for container c.
func NewContainerResult(c Container) *ContainerResult {
	return &ContainerResult{
		ID:        ContainerResultID(),
		Container: c,
	}
}

// AllPlacements flattens every layer's committed placements.
func (cr *ContainerResult) AllPlacements() []Placement {
	var all []Placement
	for _, l := range cr.Layers {
		all = append(all, l.Placements...)
	}
	return all
}

// TotalWeight sums the weight of every committed placement.
func (cr *ContainerResult) TotalWeight() float64 {
	var total float64
	for _, p := range cr.AllPlacements() {
		total += p.Item.WeightG
	}
	return total
}

// StackedHeight is the sum of the tight heights of existing layers,
// i.e. the y-coordinate a new layer would be based at.
func (cr *ContainerResult) StackedHeight() float64 {
	var total float64
	for _, l := range cr.Layers {
		total += l.TightHeight()
	}
	return total
}
