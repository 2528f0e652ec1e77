package model

// Fragment is an axis-aligned cuboid of currently empty space inside a
// layer. Fresh is true when newly produced by a split and cleared the
// first time the layer engine visits it for an item-acceptance cycle.
type Fragment struct {
	X, Y, Z    float64
	Width      float64
	Height     float64
	Length     float64
	Fresh      bool
}

// Volume of the fragment.
func (f Fragment) Volume() float64 {
	return f.Width * f.Height * f.Length
}

// valid reports whether the fragment has strictly positive dimensions
// on all three axes; slabs produced by splitting with a non-positive
// dimension are discarded rather than kept as degenerate fragments.
func (f Fragment) valid() bool {
	return f.Width > 0 && f.Height > 0 && f.Length > 0
}
