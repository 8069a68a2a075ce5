package imageproc

import (
	"image"
	"image/color"

	"github.com/jerry73204/imageproc/imop"
)

// defaultSeamColor is the color the removed seams are painted with.
var defaultSeamColor = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}

// DrawVerticalSeams paints the provided seams in red over a color copy of the
// original (full width) image. The seams must be supplied in the order they
// were removed.
func DrawVerticalSeams(img *image.Gray, seams []VerticalSeam) *image.NRGBA {
	return drawVerticalSeams(img, seams, defaultSeamColor)
}

// drawVerticalSeams reconstructs the original coordinates of each seam and
// composes the seam overlay over the image backdrop.
//
// A seam's columns are recorded relative to the image width at the time of its
// removal, so every earlier removal in the same row shifted the later columns
// left by one. The marks are replayed in removal order, keeping per row the
// list of already reconstructed columns: walking forward through that list and
// bumping the position once for every earlier mark at or below it undoes the
// shifts one removal at a time.
func drawVerticalSeams(img *image.Gray, seams []VerticalSeam, seamColor color.NRGBA) *image.NRGBA {
	height := img.Bounds().Dy()

	offsets := make([][]int, height)
	overlay := image.NewNRGBA(img.Bounds())

	for _, seam := range seams {
		for y := 0; y < height; y++ {
			xOrig := seam.At(y)
			for _, o := range offsets[y] {
				if o <= xOrig {
					xOrig++
				}
			}
			overlay.SetNRGBA(xOrig, y, seamColor)
			offsets[y] = append(offsets[y], xOrig)
		}
	}

	bitmap := imop.NewBitmap(img.Bounds())
	op := imop.InitOp()
	op.Set(imop.SrcOver)
	op.Draw(bitmap, overlay, grayToNRGBA(img))

	return bitmap.Img
}
