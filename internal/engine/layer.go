package engine

import (
	"sort"

	"github.com/piwi3910/cratepack/internal/model"
)

type fragCandidate struct {
	idx  int
	frag model.Fragment
}

// TryPlace attempts to place item into layer. committed holds every
// placement already committed anywhere in the owning container (not
// just this layer), since the collision check must see the whole
// container. xxs short-circuits all geometric checks for a container
// tagged "XXS": the item is accepted at the origin unconditionally.
// Returns true and mutates layer on success. On failure the layer's
// placements and fragments are unchanged, except that every fragment
// visited during the search has its Fresh flag cleared.
func TryPlace(layer *model.Layer, item model.Item, xxs bool, containerW, containerH, containerL float64, committed []model.Placement) bool {
	if xxs {
		p := model.Placement{Item: item, Orientation: model.RT1, X: 0, Y: 0, Z: 0}
		layer.Placements = append(layer.Placements, p)
		layer.LastProduct = item.ID
		return true
	}

	candidates := buildSearchOrder(layer, item)

	type found struct {
		frag  model.Fragment
		or    model.Orientation
		x, y, z float64
		score float64
	}
	var best *found

	initial := model.InitialOrientation(item.Width, item.Height, item.Length)
	for _, c := range candidates {
		f := c.frag
		if f.Volume() < item.EffectiveVolume() {
			continue
		}
		o := initial
		for i := 0; i < 6; i++ {
			rw, rh, rl := model.RotatedDimensions(o, item.Width, item.Height, item.Length)
			if rw <= f.Width && rh <= f.Height && rl <= f.Length {
				p := model.Placement{Item: item, Orientation: o, X: f.X, Y: f.Y, Z: f.Z}
				if p.InsideContainer(containerW, containerH, containerL) {
					minDim := minOf3(item.Width, item.Height, item.Length)
					if f.Y+minDim <= containerH {
						if !collidesWithAny(p, committed) {
							score := (f.Width - rw) * (f.Length - rl)
							if best == nil || score < best.score {
								best = &found{frag: f, or: o, x: f.X, y: f.Y, z: f.Z, score: score}
							}
						}
					}
				}
			}
			o = model.Next(o)
		}
	}

	markVisited(layer, candidates)

	if best == nil {
		return false
	}

	p := model.Placement{Item: item, Orientation: best.or, X: best.x, Y: best.y, Z: best.z}
	layer.Placements = append(layer.Placements, p)
	layer.Fragments = splitFragments(layer.Fragments, p.X, p.Y, p.Z, widthOf(p), heightOf(p), lengthOf(p))
	frag := best.frag
	layer.LastSpace = &frag
	layer.LastProduct = item.ID
	return true
}

func widthOf(p model.Placement) float64  { w, _, _ := p.RotatedDimensions(); return w }
func heightOf(p model.Placement) float64 { _, h, _ := p.RotatedDimensions(); return h }
func lengthOf(p model.Placement) float64 { _, _, l := p.RotatedDimensions(); return l }

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// buildSearchOrder implements spec steps 1-3: filter by volume,
// partition fresh-before-stale with a (z,x) sort inside each group,
// exclude the heuristic last-used fragment for a different item, then
// stably re-sort by y ascending (the order iteration and tie-breaking
// actually use).
func buildSearchOrder(layer *model.Layer, item model.Item) []fragCandidate {
	var fresh, stale []fragCandidate
	for i, f := range layer.Fragments {
		if f.Volume() < item.EffectiveVolume() {
			continue
		}
		c := fragCandidate{idx: i, frag: f}
		if f.Fresh {
			fresh = append(fresh, c)
		} else {
			stale = append(stale, c)
		}
	}
	sortByZX(fresh)
	sortByZX(stale)

	combined := append(fresh, stale...)

	if layer.LastProduct != "" && layer.LastProduct != item.ID && layer.LastSpace != nil {
		ls := *layer.LastSpace
		filtered := combined[:0]
		for _, c := range combined {
			if c.frag.X == ls.X && c.frag.Y == ls.Y && c.frag.Z == ls.Z &&
				c.frag.Width == ls.Width && c.frag.Height == ls.Height && c.frag.Length == ls.Length {
				continue
			}
			filtered = append(filtered, c)
		}
		combined = filtered
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].frag.Y < combined[j].frag.Y
	})
	return combined
}

func sortByZX(c []fragCandidate) {
	sort.SliceStable(c, func(i, j int) bool {
		if c[i].frag.Z != c[j].frag.Z {
			return c[i].frag.Z < c[j].frag.Z
		}
		return c[i].frag.X < c[j].frag.X
	})
}

func markVisited(layer *model.Layer, candidates []fragCandidate) {
	for _, c := range candidates {
		layer.Fragments[c.idx].Fresh = false
	}
}

func collidesWithAny(p model.Placement, committed []model.Placement) bool {
	for _, o := range committed {
		if p.Overlaps(o) {
			return true
		}
	}
	return false
}
