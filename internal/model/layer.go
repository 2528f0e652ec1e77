package model

// Layer is a horizontal slice of a container, built bottom-up. It owns
// its committed placements and the current free-space fragment list.
type Layer struct {
	BaseY       float64
	WorkingH    float64 // layer's remaining working height at creation time
	Placements  []Placement
	Fragments   []Fragment
	LastSpace   *Fragment
	LastProduct string
}

// NewLayer creates a layer spanning the full width/length of its
// container at base height baseY, with one fragment covering the whole
// remaining height.
func NewLayer(baseY, containerW, containerH, containerL float64) *Layer {
	workingH := containerH - baseY
	return &Layer{
		BaseY:    baseY,
		WorkingH: workingH,
		Fragments: []Fragment{
			{X: 0, Y: baseY, Z: 0, Width: containerW, Height: workingH, Length: containerL, Fresh: true},
		},
	}
}

// TightHeight is the tight envelope of this layer's committed
// placements: max(placement.y + rotated_h) - baseY. Used when stacking
// the next layer, per the corrected (non-buggy) stacking rule.
func (l *Layer) TightHeight() float64 {
	var maxTop float64
	for _, p := range l.Placements {
		_, ey, _ := p.ExtendingCorner()
		top := ey - l.BaseY
		if top > maxTop {
			maxTop = top
		}
	}
	return maxTop
}

// CommittedBoundingBoxes returns every placement committed in this
// layer. The container engine builds its collision set from
// ContainerResult.AllPlacements instead.
func (l *Layer) CommittedBoundingBoxes() []Placement {
	return l.Placements
}
