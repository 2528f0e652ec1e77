package engine

import "github.com/piwi3910/cratepack/internal/model"

// splitFragments replaces every fragment whose interior intersects the
// placement's bounding box with up to six axis-aligned slabs cut around
// it (one per half-space: -x, +x, -y, +y, -z, +z), using the full
// extent of the original fragment on the axes orthogonal to each cut.
// This produces an overlapping cover, not a strict partition: the
// overlap is always empty space and the collision check remains the
// authoritative guard against placing into occupied space. Fragments
// that do not intersect are kept verbatim.
func splitFragments(fragments []model.Fragment, px, py, pz, pw, ph, pl float64) []model.Fragment {
	qx, qy, qz := px+pw, py+ph, pz+pl

	var out []model.Fragment
	for _, f := range fragments {
		fx, fy, fz := f.X, f.Y, f.Z
		fex, fey, fez := f.X+f.Width, f.Y+f.Height, f.Z+f.Length

		if !fragmentIntersects(f, px, py, pz, qx, qy, qz) {
			out = append(out, f)
			continue
		}

		candidates := []model.Fragment{
			{X: fx, Y: fy, Z: fz, Width: px - fx, Height: fey - fy, Length: fez - fz, Fresh: true},             // -x
			{X: qx, Y: fy, Z: fz, Width: fex - qx, Height: fey - fy, Length: fez - fz, Fresh: true},             // +x
			{X: fx, Y: fy, Z: fz, Width: fex - fx, Height: py - fy, Length: fez - fz, Fresh: true},              // -y
			{X: fx, Y: qy, Z: fz, Width: fex - fx, Height: fey - qy, Length: fez - fz, Fresh: true},             // +y
			{X: fx, Y: fy, Z: fz, Width: fex - fx, Height: fey - fy, Length: pz - fz, Fresh: true},              // -z
			{X: fx, Y: fy, Z: qz, Width: fex - fx, Height: fey - fy, Length: fez - qz, Fresh: true},             // +z
		}
		for _, c := range candidates {
			if c.Width > 0 && c.Height > 0 && c.Length > 0 {
				out = append(out, c)
			}
		}
	}
	return out
}

func fragmentIntersects(f model.Fragment, px, py, pz, qx, qy, qz float64) bool {
	fex, fey, fez := f.X+f.Width, f.Y+f.Height, f.Z+f.Length
	if f.X >= qx || px >= fex {
		return false
	}
	if f.Y >= qy || py >= fey {
		return false
	}
	if f.Z >= qz || pz >= fez {
		return false
	}
	return true
}
