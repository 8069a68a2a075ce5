package imageproc

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSobel_FlatImageHasNoEnergy(t *testing.T) {
	assert := assert.New(t)

	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}

	res := SobelFilter(img, 0)
	assert.Equal(img.Bounds(), res.Bounds())
	for _, px := range res.Pix {
		assert.Equal(uint8(0), px)
	}
}

func TestSobel_DetectsVerticalEdge(t *testing.T) {
	assert := assert.New(t)

	img := image.NewGray(image.Rect(0, 0, 8, 8))
	// Step edge between columns 3 and 4.
	for y := 0; y < 8; y++ {
		for x := 4; x < 8; x++ {
			img.SetGray(x, y, grayPixel(0xc8))
		}
	}

	res := SobelFilter(img, 0)

	for y := 0; y < 8; y++ {
		assert.NotZero(res.GrayAt(3, y).Y, "edge response expected at (3, %d)", y)
		assert.NotZero(res.GrayAt(4, y).Y, "edge response expected at (4, %d)", y)
		assert.Zero(res.GrayAt(1, y).Y, "no response expected far from the edge")
		assert.Zero(res.GrayAt(6, y).Y, "no response expected far from the edge")
	}
}

func TestSobel_ThresholdSuppressesWeakResponses(t *testing.T) {
	assert := assert.New(t)

	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 4; x < 8; x++ {
			img.SetGray(x, y, grayPixel(0x08))
		}
	}

	weak := SobelFilter(img, 0)
	suppressed := SobelFilter(img, 255)

	var weakEnergy, suppressedEnergy int
	for i := range weak.Pix {
		weakEnergy += int(weak.Pix[i])
		suppressedEnergy += int(suppressed.Pix[i])
	}
	assert.Greater(weakEnergy, 0)
	assert.Zero(suppressedEnergy)
}
