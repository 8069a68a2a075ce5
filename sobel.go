package imageproc

import (
	"image"
	"math"

	"github.com/jerry73204/imageproc/utils"
)

type kernel [][]int32

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// SobelFilter computes the gradient magnitude of a grayscale image.
// The magnitude is clamped to the [0, 255] range and values below the
// threshold are zeroed out.
// See https://en.wikipedia.org/wiki/Sobel_operator
func SobelFilter(img *image.Gray, threshold float64) *image.Gray {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, dx, dy))

	// Pixels outside the image are clamped to the nearest edge pixel.
	pixel := func(x, y int) int32 {
		x = utils.Min(utils.Max(x, 0), dx-1)
		y = utils.Min(utils.Max(y, 0), dy-1)
		return int32(img.GrayAt(x, y).Y)
	}

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			var sumX, sumY int32
			// Sum the 3x3 window around the pixel with the kernel values.
			for ky := 0; ky < len(kernelY); ky++ {
				for kx := 0; kx < len(kernelX); kx++ {
					px := pixel(x+kx-1, y+ky-1)
					sumX += px * kernelX[ky][kx]
					sumY += px * kernelY[ky][kx]
				}
			}
			magnitude := math.Sqrt(float64(sumX*sumX) + float64(sumY*sumY))
			if magnitude > 255 {
				magnitude = 255
			}
			if magnitude <= threshold {
				magnitude = 0
			}
			dst.Pix[y*dst.Stride+x] = uint8(magnitude)
		}
	}
	return dst
}
