package imageproc

import (
	"image"
)

// Carver holds the energy table used to detect the lowest energy seam.
// The table starts out with the per pixel gradient magnitudes and is
// converted in place into cumulative path energies by the accumulation pass.
type Carver struct {
	Width  int
	Height int
	Points []uint32
}

// NewCarver returns a zero initialized energy table of the given dimensions.
func NewCarver(width, height int) *Carver {
	return &Carver{
		Width:  width,
		Height: height,
		Points: make([]uint32, width*height),
	}
}

// get returns the energy value at (x, y).
func (c *Carver) get(x, y int) uint32 {
	return c.Points[x+y*c.Width]
}

// set stores the energy value at (x, y).
func (c *Carver) set(x, y int, px uint32) {
	c.Points[x+y*c.Width] = px
}

// ComputeEnergies fills the table with the gradient magnitudes of the source
// image obtained by running the Sobel operator, optionally smoothed with a
// stack blur to spread the energy of hard edges over their neighborhood.
func (c *Carver) ComputeEnergies(img *image.Gray, sobelThreshold, blurRadius int) {
	sobel := SobelFilter(img, float64(sobelThreshold))
	if blurRadius > 0 {
		sobel = Stackblur(sobel, uint32(blurRadius))
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			c.set(x, y, uint32(sobel.GrayAt(x, y).Y))
		}
	}
	c.accumulatePathEnergies()
}

// accumulatePathEnergies converts the raw gradient magnitudes into cumulative
// minimal path energies. After the pass, cell (x, y) holds the total energy of
// the cheapest 8-connected path from row 0 down to that cell.
//
// Row 0 is the base case and is left untouched. Each subsequent row only reads
// the previous one, so the rows must be processed in increasing order.
func (c *Carver) accumulatePathEnergies() {
	for y := 1; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			min := c.get(x, y-1)
			if x > 0 {
				if left := c.get(x-1, y-1); left < min {
					min = left
				}
			}
			if x < c.Width-1 {
				if right := c.get(x+1, y-1); right < min {
					min = right
				}
			}
			c.set(x, y, c.get(x, y)+min)
		}
	}
}

// FindLowestEnergySeam retraces the accumulated table into the seam with the
// minimal total energy. The walk starts at the cheapest bottom row cell and at
// each row moves to the cheapest of the three cells above it (straight up,
// up-left, up-right). Ties always resolve to the leftmost candidate, so the
// result is deterministic.
//
// The table must already be accumulated. An ErrImageTooNarrow error is
// returned when the table is less than two columns wide.
func (c *Carver) FindLowestEnergySeam() (VerticalSeam, error) {
	if c.Width < 2 {
		return nil, ErrImageTooNarrow
	}

	minX := 0
	minEnergy := c.get(0, c.Height-1)
	for x := 1; x < c.Width; x++ {
		if e := c.get(x, c.Height-1); e < minEnergy {
			minX, minEnergy = x, e
		}
	}

	seam := make(VerticalSeam, 0, c.Height)
	seam = append(seam, minX)

	lastX := minX
	for y := c.Height - 1; y >= 1; y-- {
		minX, minEnergy = lastX, c.get(lastX, y-1)
		if lastX > 0 {
			if left := c.get(lastX-1, y-1); left < minEnergy {
				minX, minEnergy = lastX-1, left
			}
		}
		if lastX < c.Width-1 {
			if right := c.get(lastX+1, y-1); right < minEnergy {
				minX, minEnergy = lastX+1, right
			}
		}
		lastX = minX
		seam = append(seam, minX)
	}
	return seam, nil
}
