package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotatedDimensions_AllSixOrientations(t *testing.T) {
	w, h, l := 2.0, 3.0, 5.0
	cases := map[Orientation][3]float64{
		RT1: {2, 3, 5},
		RT2: {5, 3, 2},
		RT3: {3, 2, 5},
		RT4: {5, 2, 3},
		RT5: {3, 5, 2},
		RT6: {2, 5, 3},
	}
	for o, want := range cases {
		rw, rh, rl := RotatedDimensions(o, w, h, l)
		assert.Equal(t, want, [3]float64{rw, rh, rl}, o.String())
	}
}

func TestNextAndPrevious_CycleThroughAllSix(t *testing.T) {
	o := RT1
	for i := 0; i < 6; i++ {
		o = Next(o)
	}
	assert.Equal(t, RT1, o)
	assert.Equal(t, RT6, Previous(RT1))
}

func TestInitialOrientation_PutsMiddleAsWidthSmallestAsHeight(t *testing.T) {
	o := InitialOrientation(10, 2, 5)
	rw, rh, rl := RotatedDimensions(o, 10, 2, 5)
	assert.Equal(t, 5.0, rw)
	assert.Equal(t, 2.0, rh)
	assert.Equal(t, 10.0, rl)
}

func TestInitialOrientation_CubeResolvesToRT1(t *testing.T) {
	o := InitialOrientation(4, 4, 4)
	assert.Equal(t, RT1, o)
}
