package model

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Container is an immutable cuboidal packing target. Inner dimensions
// are normalised at construction time so that Height >= Width >= Length.
type Container struct {
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	Length            float64 `json:"length"`
	OwnWeightG        float64 `json:"weight"`
	MaxWeightG        float64 `json:"max_weight"`
	ContainerType     string  `json:"container_type"`
	Description       string  `json:"description"`
	Remark            string  `json:"remark"`
	MinFillPercentage float64 `json:"min_fill_percentage"`
	MaxFillPercentage float64 `json:"max_fill_percentage"`
}

// NewContainer builds a Container from raw (width, height, length)
// input, permuting them to satisfy Height >= Width >= Length. This is
// the same three-step conditional swap the reference constructor uses,
// not a generic sort, so ties resolve identically to the reference.
func NewContainer(width, height, length, ownWeightG, maxWeightG float64, containerType, description, remark string, minFill, maxFill float64) Container {
	w, h, l := width, height, length
	if h < w {
		h, w = w, h
	}
	if w < l {
		w, l = l, w
	}
	if h < w {
		h, w = w, h
	}
	if maxFill == 0 {
		maxFill = 80.0
	}
	if minFill == 0 {
		minFill = 5.0
	}
	return Container{
		Width:             w,
		Height:            h,
		Length:            l,
		OwnWeightG:        ownWeightG,
		MaxWeightG:        maxWeightG,
		ContainerType:     containerType,
		Description:       description,
		Remark:            remark,
		MinFillPercentage: minFill,
		MaxFillPercentage: maxFill,
	}
}

// GrossVolume is w*h*l of the normalised container.
func (c Container) GrossVolume() float64 {
	return c.Width * c.Height * c.Length
}

// MinContentVolume is the minimum accepted contents volume.
func (c Container) MinContentVolume() float64 {
	return c.GrossVolume() * c.MinFillPercentage / 100.0
}

// MaxContentVolume is the maximum accepted contents volume.
func (c Container) MaxContentVolume() float64 {
	return c.GrossVolume() * c.MaxFillPercentage / 100.0
}

// NetWeightCapacity is the maximum weight of committed contents.
func (c Container) NetWeightCapacity() float64 {
	return c.MaxWeightG - c.OwnWeightG
}

// IsXXS reports whether this container's type tag requests the
// degenerate short-circuit placement policy.
func (c Container) IsXXS() bool {
	return c.ContainerType == "XXS"
}

// FitsWithin reports whether an order of total effective volume v and
// total weight g could be accepted by this container on volume/weight
// grounds alone.
func (c Container) FitsWithin(v, g float64) bool {
	return c.MinContentVolume() <= v && v <= c.MaxContentVolume() && g <= c.NetWeightCapacity()
}

// FitsWithDimensions reports whether a cuboid of dimensions d (in any
// order) fits inside this container, comparing both sorted descending.
func (c Container) FitsWithDimensions(d [3]float64) bool {
	sort.Sort(sort.Reverse(sort.Float64Slice(d[:])))
	own := [3]float64{c.Width, c.Height, c.Length}
	sort.Sort(sort.Reverse(sort.Float64Slice(own[:])))
	for i := 0; i < 3; i++ {
		if d[i] > own[i] {
			return false
		}
	}
	return true
}

// IsOversizedFor reports whether item it cannot fit this container in
// any orientation: sorted descending, any item dimension exceeds the
// container's corresponding sorted dimension.
func (c Container) IsOversizedFor(it Item) bool {
	return !c.FitsWithDimensions(it.sortedDimensionsDesc())
}

// isUndersizedOrMulti reports whether the container's description
// marks it as excluded from automatic selection.
func (c Container) isUndersizedOrMulti() bool {
	return strings.Contains(c.Description, "Undersized") || strings.Contains(c.Description, "Multi")
}

// ExcludedFromAutoSelection reports whether the container's description
// tags it as reachable only by explicit choice, never by the automatic
// catalogue walk.
func (c Container) ExcludedFromAutoSelection() bool {
	return c.isUndersizedOrMulti()
}

// SortCatalogueAscending sorts containers ascending by maximum contents
// volume, the order the order engine walks the catalogue in.
func SortCatalogueAscending(catalogue []Container) {
	sort.SliceStable(catalogue, func(i, j int) bool {
		return catalogue[i].MaxContentVolume() < catalogue[j].MaxContentVolume()
	})
}

// ContainerResultID returns a short stable identifier for a new
// container result.
func ContainerResultID() string {
	return uuid.New().String()[:8]
}
