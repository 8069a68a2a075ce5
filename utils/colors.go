package utils

import (
	"image/color"
	"strconv"
	"strings"
)

// HexToRGBA converts a color expressed as a hex string into color.NRGBA.
// Both the short (#fff) and the long (#ffffff) form are accepted; invalid
// input yields an opaque black.
func HexToRGBA(hex string) color.NRGBA {
	hex = strings.TrimPrefix(hex, "#")
	c := color.NRGBA{A: 0xff}

	switch len(hex) {
	case 3:
		hex = strings.Join([]string{
			hex[0:1], hex[0:1],
			hex[1:2], hex[1:2],
			hex[2:3], hex[2:3],
		}, "")
		fallthrough
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return c
		}
		c.R = uint8(v >> 16)
		c.G = uint8(v >> 8)
		c.B = uint8(v)
	}
	return c
}
