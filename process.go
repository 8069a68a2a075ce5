package imageproc

import (
	"errors"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/jerry73204/imageproc/utils"

	_ "golang.org/x/image/bmp"
)

// Processor holds the options of the image carving operation.
type Processor struct {
	SobelThreshold int
	BlurRadius     int
	NewWidth       int
	SeamColor      string
	Percentage     bool
	Scale          bool
	Debug          bool
}

// Process is the main entry point of the carving operation.
// It reads the source image from r, reduces its width down to the requested
// size and encodes the result into w. We are using the io package, since we
// can provide different input and output types, as long as they implement the
// io.Reader and io.Writer interface.
//
// In debug mode the removed seams are painted over the original image
// instead of writing out the carved result.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, err := decodeImage(r)
	if err != nil {
		return err
	}
	img := Grayscale(src)

	target, err := p.targetWidth(img.Bounds().Dx())
	if err != nil {
		return err
	}

	// Rescaling ahead of the carver trades carving quality for speed: the
	// image is first scaled down by preserving its aspect ratio and the
	// seam carving algorithm is applied only to the remaining pixels.
	if p.Scale && img.Bounds().Dx() > target*2 {
		img = Grayscale(imaging.Resize(img, target*2, 0, imaging.Lanczos))
	}

	res, seams, err := carve(img, target, p.SobelThreshold, p.BlurRadius, p.Debug)
	if err != nil {
		return err
	}

	if p.Debug {
		return encodeImage(w, drawVerticalSeams(img, seams, p.seamColor()))
	}
	return encodeImage(w, res)
}

// targetWidth resolves the requested output width against the source width,
// interpreting NewWidth as a reduction percentage when the Percentage option
// is active.
func (p *Processor) targetWidth(width int) (int, error) {
	if p.NewWidth == 0 {
		return 0, errors.New("please provide a new width or a reduction percentage")
	}
	if p.Percentage {
		if p.NewWidth >= 100 {
			return 0, ErrDegenerateWidth
		}
		return width - int(float64(width)*float64(p.NewWidth)/100), nil
	}
	return p.NewWidth, nil
}

// seamColor resolves the debug seam color option.
func (p *Processor) seamColor() color.NRGBA {
	if p.SeamColor == "" {
		return defaultSeamColor
	}
	return utils.HexToRGBA(p.SeamColor)
}
