// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition
// operations, but the image/draw core package implements only the
// source-over-destination and source ones. This package covers the rest.
package imop

import (
	"image"
	"image/color"
	"math"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// fragment holds the Porter-Duff source and backdrop fractions of a
// composition operation, expressed as functions of the two alpha values.
type fragment struct {
	fa func(as, ab float64) float64
	fb func(as, ab float64) float64
}

var one = func(as, ab float64) float64 { return 1 }
var zero = func(as, ab float64) float64 { return 0 }

var fragments = map[string]fragment{
	Copy:    {fa: one, fb: zero},
	SrcOver: {fa: one, fb: func(as, ab float64) float64 { return 1 - as }},
	DstOver: {fa: func(as, ab float64) float64 { return 1 - ab }, fb: one},
	SrcIn:   {fa: func(as, ab float64) float64 { return ab }, fb: zero},
	DstIn:   {fa: zero, fb: func(as, ab float64) float64 { return as }},
	SrcOut:  {fa: func(as, ab float64) float64 { return 1 - ab }, fb: zero},
	DstOut:  {fa: zero, fb: func(as, ab float64) float64 { return 1 - as }},
	SrcAtop: {fa: func(as, ab float64) float64 { return ab }, fb: func(as, ab float64) float64 { return 1 - as }},
	DstAtop: {fa: func(as, ab float64) float64 { return 1 - ab }, fb: func(as, ab float64) float64 { return as }},
	Xor:     {fa: func(as, ab float64) float64 { return 1 - ab }, fb: func(as, ab float64) float64 { return 1 - as }},
}

// Bitmap is the target buffer a composition operation renders into.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap initializes a new composition target of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
}

// InitOp initializes a new Composite with the default copy operation.
func InitOp() *Composite {
	return &Composite{
		current: Copy,
	}
}

// Set activates one of the supported composition operations.
// Unknown operation names leave the current operation unchanged.
func (op *Composite) Set(cop string) {
	if _, ok := fragments[cop]; ok {
		op.current = cop
	}
}

// Draw composes the source image over the backdrop with the active operation
// and renders the result into the bitmap.
func (op *Composite) Draw(bitmap *Bitmap, src, backdrop *image.NRGBA) {
	frag := fragments[op.current]
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			s := src.NRGBAAt(x, y)
			b := backdrop.NRGBAAt(x, y)

			as := float64(s.A) / 255
			ab := float64(b.A) / 255
			fa := frag.fa(as, ab)
			fb := frag.fb(as, ab)

			// The alpha composition formula: co = Fa*as*Cs + Fb*ab*Cb.
			blendChan := func(cs, cb uint8) uint8 {
				cn := fa*as*float64(cs)/255 + fb*ab*float64(cb)/255
				return uint8(math.Round(cn * 255))
			}

			bitmap.Img.SetNRGBA(x, y, color.NRGBA{
				R: blendChan(s.R, b.R),
				G: blendChan(s.G, b.G),
				B: blendChan(s.B, b.B),
				A: uint8(math.Round((fa*as + fb*ab) * 255)),
			})
		}
	}
}
