package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath_Min(t *testing.T) {
	assert.Equal(t, 2, Min(2, 7))
	assert.Equal(t, 2, Min(7, 2))
	assert.Equal(t, -1.5, Min(-1.5, 0.0))
}

func TestMath_Max(t *testing.T) {
	assert.Equal(t, 7, Max(2, 7))
	assert.Equal(t, 7, Max(7, 2))
	assert.Equal(t, 0.0, Max(-1.5, 0.0))
}

func TestMath_Abs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, 1.5, Abs(-1.5))
}
