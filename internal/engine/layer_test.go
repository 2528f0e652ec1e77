package engine

import (
	"testing"

	"github.com/piwi3910/cratepack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube(id string, side float64) model.Item {
	return model.NewItem(id, side, side, side, 1000, 100, "")
}

func TestTryPlace_FirstItemLandsAtOrigin(t *testing.T) {
	layer := model.NewLayer(0, 100, 100, 100)
	item := cube("C", 40)

	ok := TryPlace(layer, item, false, 100, 100, 100, nil)

	require.True(t, ok)
	require.Len(t, layer.Placements, 1)
	p := layer.Placements[0]
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 0.0, p.Z)
}

func TestTryPlace_SecondItemPrefersTightestLeftover(t *testing.T) {
	layer := model.NewLayer(0, 100, 100, 100)
	c := cube("C", 40)
	require.True(t, TryPlace(layer, c, false, 100, 100, 100, nil))

	d := cube("D", 30)
	committed := []model.Placement{layer.Placements[0]}
	ok := TryPlace(layer, d, false, 100, 100, 100, committed)

	require.True(t, ok)
	require.Len(t, layer.Placements, 2)
	p := layer.Placements[1]
	assert.Equal(t, 40.0, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 0.0, p.Z)
}

func TestTryPlace_RejectsWhenNoFragmentFits(t *testing.T) {
	layer := model.NewLayer(0, 50, 50, 50)
	big := cube("BIG", 40)
	require.True(t, TryPlace(layer, big, false, 50, 50, 50, nil))

	another := cube("ANOTHER", 40)
	committed := []model.Placement{layer.Placements[0]}
	ok := TryPlace(layer, another, false, 50, 50, 50, committed)

	assert.False(t, ok)
}

func TestTryPlace_XXSShortCircuitsToOrigin(t *testing.T) {
	layer := model.NewLayer(0, 10, 10, 10)
	item := cube("HUGE", 500)

	ok := TryPlace(layer, item, true, 10, 10, 10, nil)

	require.True(t, ok)
	p := layer.Placements[0]
	assert.Equal(t, model.RT1, p.Orientation)
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 0.0, p.Z)
}

func TestTryPlace_NeverCollidesWithCommittedPlacements(t *testing.T) {
	layer := model.NewLayer(0, 100, 100, 100)
	a := cube("A", 50)
	require.True(t, TryPlace(layer, a, false, 100, 100, 100, nil))

	b := cube("B", 40)
	committed := []model.Placement{layer.Placements[0]}
	ok := TryPlace(layer, b, false, 100, 100, 100, committed)
	if ok {
		for i := 0; i < len(layer.Placements); i++ {
			for j := i + 1; j < len(layer.Placements); j++ {
				assert.False(t, layer.Placements[i].Overlaps(layer.Placements[j]))
			}
		}
	}
}
