package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLayer_OneFragmentSpanningRemainingHeight(t *testing.T) {
	l := NewLayer(20, 100, 150, 80)
	assert.Equal(t, 130.0, l.WorkingH)
	assert.Len(t, l.Fragments, 1)
	assert.Equal(t, 20.0, l.Fragments[0].Y)
	assert.Equal(t, 130.0, l.Fragments[0].Height)
}

func TestLayer_TightHeight_IsMaxPlacementTopMinusBase(t *testing.T) {
	l := NewLayer(10, 100, 100, 100)
	l.Placements = []Placement{
		{Item: Item{Width: 5, Height: 5, Length: 5}, Orientation: RT1, X: 0, Y: 10, Z: 0},
		{Item: Item{Width: 5, Height: 20, Length: 5}, Orientation: RT1, X: 10, Y: 10, Z: 0},
	}
	assert.Equal(t, 20.0, l.TightHeight())
}

func TestLayer_TightHeight_EmptyLayerIsZero(t *testing.T) {
	l := NewLayer(0, 100, 100, 100)
	assert.Equal(t, 0.0, l.TightHeight())
}
