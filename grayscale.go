package imageproc

import (
	"image"
	"image/color"
)

// Grayscale converts any image type to grayscale mode with min-point at (0, 0).
func Grayscale(src image.Image) *image.Gray {
	bounds := src.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, dx, dy))

	if gray, ok := src.(*image.Gray); ok && bounds.Min.X == 0 && bounds.Min.Y == 0 {
		for y := 0; y < dy; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+dx], gray.Pix[y*gray.Stride:])
		}
		return dst
	}

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			dst.SetGray(x, y, color.Gray{Y: uint8(lum / 256)})
		}
	}
	return dst
}

// grayToNRGBA lifts a grayscale image into color mode, used as the backdrop
// for the seam visualization overlay.
func grayToNRGBA(src *image.Gray) *image.NRGBA {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, dx, dy))

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			lum := src.GrayAt(x, y).Y
			dst.SetNRGBA(x, y, color.NRGBA{R: lum, G: lum, B: lum, A: 0xff})
		}
	}
	return dst
}
