package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragment_Volume(t *testing.T) {
	f := Fragment{Width: 2, Height: 3, Length: 4}
	assert.Equal(t, 24.0, f.Volume())
}

func TestFragment_Valid(t *testing.T) {
	assert.True(t, Fragment{Width: 1, Height: 1, Length: 1}.valid())
	assert.False(t, Fragment{Width: 0, Height: 1, Length: 1}.valid())
}
