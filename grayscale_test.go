package imageproc

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func grayPixel(v uint8) color.Gray {
	return color.Gray{Y: v}
}

func TestGrayscale_NeutralColorKeepsItsIntensity(t *testing.T) {
	assert := assert.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 177, G: 177, B: 177, A: 255})
		}
	}

	res := Grayscale(img)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(uint8(177), res.GrayAt(x, y).Y)
		}
	}
}

func TestGrayscale_LumaWeights(t *testing.T) {
	assert := assert.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	// Pure red maps to its Rec. 601 luma share.
	res := Grayscale(img)
	assert.InDelta(76, int(res.GrayAt(0, 0).Y), 1)
}

func TestGrayscale_GrayInputIsCopied(t *testing.T) {
	assert := assert.New(t)

	img := gradientGrayImage(7, 5)

	res := Grayscale(img)
	assert.Equal(img.Pix, res.Pix)

	// The copy must not alias the source buffer.
	res.Pix[0]++
	assert.NotEqual(img.Pix[0], res.Pix[0])
}

func TestGrayscale_NonZeroOriginIsNormalized(t *testing.T) {
	assert := assert.New(t)

	img := image.NewRGBA(image.Rect(-2, -2, 8, 8))
	res := Grayscale(img)

	assert.Equal(image.Rect(0, 0, 10, 10), res.Bounds())
}

func TestGrayscale_GrayToNRGBA(t *testing.T) {
	assert := assert.New(t)

	img := gradientGrayImage(4, 4)
	res := grayToNRGBA(img)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			lum := img.GrayAt(x, y).Y
			px := res.NRGBAAt(x, y)
			assert.Equal(color.NRGBA{R: lum, G: lum, B: lum, A: 0xff}, px)
		}
	}
}
