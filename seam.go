package imageproc

import (
	"errors"
	"image"
)

// The carving operations fail fast on precondition violations; invalid input
// is a programming error at the call site, not a condition to retry.
var (
	// ErrImageTooNarrow is returned when a seam is requested on an image
	// less than two pixels wide.
	ErrImageTooNarrow = errors.New("imageproc: seam carving requires an image at least two pixels wide")

	// ErrInvalidTargetWidth is returned when the requested width exceeds
	// the source image width.
	ErrInvalidTargetWidth = errors.New("imageproc: target width exceeds the image width")

	// ErrDegenerateWidth is returned when the requested width would leave
	// the image without any column.
	ErrDegenerateWidth = errors.New("imageproc: target width must be at least one pixel")

	// ErrSeamLengthMismatch is returned when the seam length does not
	// match the image height.
	ErrSeamLengthMismatch = errors.New("imageproc: seam length does not match the image height")
)

// VerticalSeam is an 8-connected path of column indices, one per image row,
// ordered from the bottom row of the image to the top row.
type VerticalSeam []int

// At returns the seam column for image row y, translating from the bottom to
// top ordering of the seam to the top-down image coordinates.
func (s VerticalSeam) At(y int) int {
	return s[len(s)-1-y]
}

// FindVerticalSeam computes the 8-connected path from the bottom of the image
// to its top whose sum of gradient magnitudes is minimal.
func FindVerticalSeam(img *image.Gray) (VerticalSeam, error) {
	return findSeam(img, 0, 0)
}

// findSeam builds the energy table of the image with the given Sobel
// threshold and blur radius, accumulates it and retraces the cheapest seam.
func findSeam(img *image.Gray, sobelThreshold, blurRadius int) (VerticalSeam, error) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width < 2 {
		return nil, ErrImageTooNarrow
	}

	c := NewCarver(width, height)
	c.ComputeEnergies(img, sobelThreshold, blurRadius)

	return c.FindLowestEnergySeam()
}

// RemoveVerticalSeam returns a copy of the image one column narrower, with the
// seam pixel of each row removed and the trailing pixels shifted left by one.
// The source image is left unmodified.
func RemoveVerticalSeam(img *image.Gray, seam VerticalSeam) (*image.Gray, error) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width < 2 {
		return nil, ErrImageTooNarrow
	}
	if len(seam) != height {
		return nil, ErrSeamLengthMismatch
	}

	dst := image.NewGray(image.Rect(0, 0, width-1, height))
	for y := 0; y < height; y++ {
		seamX := seam.At(y)
		for x := 0; x < seamX; x++ {
			dst.SetGray(x, y, img.GrayAt(x, y))
		}
		for x := seamX + 1; x < width; x++ {
			dst.SetGray(x-1, y, img.GrayAt(x, y))
		}
	}
	return dst, nil
}

// ShrinkWidth reduces the image width down to targetWidth by repeatedly
// removing the lowest energy vertical seam. Each iteration operates on the
// image produced by the previous removal, so the loop is strictly sequential.
// A targetWidth equal to the image width returns the input unchanged.
func ShrinkWidth(img *image.Gray, targetWidth int) (*image.Gray, error) {
	res, _, err := carve(img, targetWidth, 0, 0, false)
	return res, err
}

// carve runs the carving loop and optionally records the removed seams, in
// removal order, for the seam visualizer.
func carve(img *image.Gray, targetWidth, sobelThreshold, blurRadius int, recordSeams bool) (*image.Gray, []VerticalSeam, error) {
	width := img.Bounds().Dx()
	if targetWidth > width {
		return nil, nil, ErrInvalidTargetWidth
	}
	if targetWidth < 1 {
		return nil, nil, ErrDegenerateWidth
	}

	var seams []VerticalSeam
	if recordSeams {
		seams = make([]VerticalSeam, 0, width-targetWidth)
	}

	for i := 0; i < width-targetWidth; i++ {
		seam, err := findSeam(img, sobelThreshold, blurRadius)
		if err != nil {
			return nil, nil, err
		}
		if img, err = RemoveVerticalSeam(img, seam); err != nil {
			return nil, nil, err
		}
		if recordSeams {
			seams = append(seams, seam)
		}
	}
	return img, seams, nil
}
