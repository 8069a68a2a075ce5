package imageproc

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackblur_UniformImageIsUnchanged(t *testing.T) {
	assert := assert.New(t)

	img := image.NewGray(image.Rect(0, 0, 9, 9))
	for i := range img.Pix {
		img.Pix[i] = 0x40
	}

	res := Stackblur(img, 4)
	assert.Equal(image.Rect(0, 0, 9, 9), res.Bounds())
	for _, px := range res.Pix {
		assert.Equal(uint8(0x40), px)
	}
}

func TestStackblur_SpreadsAnImpulse(t *testing.T) {
	assert := assert.New(t)

	img := image.NewGray(image.Rect(0, 0, 9, 9))
	img.SetGray(4, 4, grayPixel(0xff))

	res := Stackblur(img, 2)

	center := res.GrayAt(4, 4).Y
	neighbor := res.GrayAt(3, 4).Y
	far := res.GrayAt(0, 0).Y

	assert.Less(center, uint8(0xff), "the impulse must lose intensity")
	assert.NotZero(neighbor, "the impulse must bleed into its neighborhood")
	assert.Zero(far, "pixels outside the radius stay untouched")
	assert.GreaterOrEqual(center, neighbor)
}

func TestStackblur_ZeroRadiusIsANoop(t *testing.T) {
	assert := assert.New(t)

	img := gradientGrayImage(6, 6)
	orig := make([]uint8, len(img.Pix))
	copy(orig, img.Pix)

	res := Stackblur(img, 0)
	assert.Equal(orig, res.Pix)
}
