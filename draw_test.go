package imageproc

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

// redPixels collects the coordinates painted with the default seam color.
func redPixels(img *image.NRGBA) map[image.Point]bool {
	marks := make(map[image.Point]bool)
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			px := img.NRGBAAt(x, y)
			if px.R == 0xff && px.G == 0x00 && px.B == 0x00 {
				marks[image.Point{X: x, Y: y}] = true
			}
		}
	}
	return marks
}

func TestDraw_SingleSeamRoundTrip(t *testing.T) {
	assert := assert.New(t)

	img := gradientGrayImage(10, 8)
	height := img.Bounds().Dy()

	seam, err := FindVerticalSeam(img)
	assert.NoError(err)

	out := DrawVerticalSeams(img, []VerticalSeam{seam})
	assert.Equal(img.Bounds(), out.Bounds())

	// With no prior removal the marked columns match the seam exactly,
	// one mark per row.
	marks := redPixels(out)
	assert.Len(marks, height)
	for y := 0; y < height; y++ {
		assert.True(marks[image.Point{X: seam.At(y), Y: y}], "expected a mark at (%d, %d)", seam.At(y), y)
	}
}

func TestDraw_RepeatedLeftmostSeams(t *testing.T) {
	assert := assert.New(t)

	img := image.NewGray(image.Rect(0, 0, 4, 3))
	zero := VerticalSeam{0, 0, 0}

	// Removing the leftmost column three times in a row shifts each
	// later seam by the number of earlier marks at or below it, so the
	// reconstructed columns are 0, 1 and 2.
	out := drawVerticalSeams(img, []VerticalSeam{zero, zero, zero}, defaultSeamColor)

	marks := redPixels(out)
	assert.Len(marks, 9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.True(marks[image.Point{X: x, Y: y}], "expected a mark at (%d, %d)", x, y)
		}
	}
}

func TestDraw_SeamHistoryCoversDistinctPixels(t *testing.T) {
	assert := assert.New(t)

	img := gradientGrayImage(11, 6)
	height := img.Bounds().Dy()
	removals := 3

	_, seams, err := carve(img, img.Bounds().Dx()-removals, 0, 0, true)
	assert.NoError(err)
	assert.Len(seams, removals)

	out := DrawVerticalSeams(img, seams)

	// Each removal must map onto its own set of original pixels: one
	// mark per row per seam, with no overlap between seams.
	marks := redPixels(out)
	assert.Len(marks, removals*height)
}

func TestDraw_CustomSeamColor(t *testing.T) {
	assert := assert.New(t)

	img := gradientGrayImage(6, 4)
	seam, err := FindVerticalSeam(img)
	assert.NoError(err)

	p := &Processor{SeamColor: "#00ff00"}
	out := drawVerticalSeams(img, []VerticalSeam{seam}, p.seamColor())

	px := out.NRGBAAt(seam.At(0), 3)
	assert.Equal(uint8(0x00), px.R)
	assert.Equal(uint8(0xff), px.G)
	assert.Equal(uint8(0x00), px.B)
}
