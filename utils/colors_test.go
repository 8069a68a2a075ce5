package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToRGBA(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		name string
		hex  string
		want color.NRGBA
	}{
		{name: "long form", hex: "#ff0000", want: color.NRGBA{R: 0xff, A: 0xff}},
		{name: "short form", hex: "#0f0", want: color.NRGBA{G: 0xff, A: 0xff}},
		{name: "without prefix", hex: "336699", want: color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}},
		{name: "invalid digits", hex: "#zzzzzz", want: color.NRGBA{A: 0xff}},
		{name: "wrong length", hex: "#ffff", want: color.NRGBA{A: 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(tc.want, HexToRGBA(tc.hex))
		})
	}
}
