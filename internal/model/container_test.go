package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContainer_NormalisesHeightWidthLength(t *testing.T) {
	c := NewContainer(10, 30, 20, 0, 0, "M", "Medium", "", 0, 0)
	assert.Equal(t, 30.0, c.Height)
	assert.Equal(t, 20.0, c.Width)
	assert.Equal(t, 10.0, c.Length)
}

func TestNewContainer_DefaultsFillPercentages(t *testing.T) {
	c := NewContainer(10, 10, 10, 0, 0, "S", "Small", "", 0, 0)
	assert.Equal(t, 80.0, c.MaxFillPercentage)
	assert.Equal(t, 5.0, c.MinFillPercentage)
}

func TestContainer_FitsWithin(t *testing.T) {
	c := NewContainer(10, 10, 10, 100, 5000, "S", "Small", "", 0, 0)
	assert.True(t, c.FitsWithin(500, 1000))
	assert.False(t, c.FitsWithin(10, 1000))
	assert.False(t, c.FitsWithin(500, 10000))
}

func TestContainer_FitsWithDimensions(t *testing.T) {
	c := NewContainer(10, 10, 10, 0, 0, "S", "Small", "", 0, 0)
	assert.True(t, c.FitsWithDimensions([3]float64{5, 8, 2}))
	assert.False(t, c.FitsWithDimensions([3]float64{5, 12, 2}))
}

func TestContainer_IsOversizedFor(t *testing.T) {
	c := NewContainer(10, 10, 10, 0, 0, "S", "Small", "", 0, 0)
	small := NewItem("A", 5, 5, 5, 100, 100, "")
	big := NewItem("B", 20, 20, 20, 100, 100, "")
	assert.False(t, c.IsOversizedFor(small))
	assert.True(t, c.IsOversizedFor(big))
}

func TestContainer_IsXXS(t *testing.T) {
	c := NewContainer(10, 10, 10, 0, 0, "XXS", "Undersized tiny box", "", 0, 0)
	assert.True(t, c.IsXXS())
}

func TestContainer_ExcludedFromAutoSelection(t *testing.T) {
	undersized := NewContainer(10, 10, 10, 0, 0, "XXS", "Undersized tiny box", "", 0, 0)
	multi := NewContainer(10, 10, 10, 0, 0, "MX", "Multi-pack box", "", 0, 0)
	normal := NewContainer(10, 10, 10, 0, 0, "M", "Medium box", "", 0, 0)
	assert.True(t, undersized.ExcludedFromAutoSelection())
	assert.True(t, multi.ExcludedFromAutoSelection())
	assert.False(t, normal.ExcludedFromAutoSelection())
}

func TestSortCatalogueAscending_OrdersByMaxContentVolume(t *testing.T) {
	catalogue := []Container{
		NewContainer(20, 20, 20, 0, 0, "L", "Large", "", 0, 0),
		NewContainer(5, 5, 5, 0, 0, "S", "Small", "", 0, 0),
	}
	SortCatalogueAscending(catalogue)
	assert.Equal(t, "S", catalogue[0].ContainerType)
	assert.Equal(t, "L", catalogue[1].ContainerType)
}
