package model

// Placement binds an item to coordinates and an orientation inside a
// container. It is mutable while the layer engine searches for a spot
// and frozen once committed.
type Placement struct {
	Item        Item
	Orientation Orientation
	X, Y, Z     float64
}

// RotatedDimensions returns the item's dimensions as rotated by this
// placement's orientation.
func (p Placement) RotatedDimensions() (w, h, l float64) {
	return RotatedDimensions(p.Orientation, p.Item.Width, p.Item.Height, p.Item.Length)
}

// ExtendingCorner is the far corner (x+w', y+h', z+l') of the placed
// item's bounding box.
func (p Placement) ExtendingCorner() (ex, ey, ez float64) {
	w, h, l := p.RotatedDimensions()
	return p.X + w, p.Y + h, p.Z + l
}

// Overlaps reports strict AABB overlap with another placement: every
// axis's open interval overlaps. Coincident faces do not collide.
func (p Placement) Overlaps(o Placement) bool {
	pex, pey, pez := p.ExtendingCorner()
	oex, oey, oez := o.ExtendingCorner()
	if p.X >= oex || o.X >= pex {
		return false
	}
	if p.Y >= oey || o.Y >= pey {
		return false
	}
	if p.Z >= oez || o.Z >= pez {
		return false
	}
	return true
}

// InsideContainer reports whether this placement lies wholly inside a
// container of the given normalised dimensions.
func (p Placement) InsideContainer(cw, ch, cl float64) bool {
	if p.X < 0 || p.Y < 0 || p.Z < 0 {
		return false
	}
	ex, ey, ez := p.ExtendingCorner()
	return ex <= cw && ey <= ch && ez <= cl
}
