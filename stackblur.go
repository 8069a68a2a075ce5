// Go implementation of the StackBlur algorithm described here:
// http://incubator.quasimondo.com/processing/fast_blur_deluxe.php

package imageproc

import (
	"image"
)

type blurstack struct {
	v    uint32
	next *blurstack
}

var mulTable = []uint32{
	512, 512, 456, 512, 328, 456, 335, 512, 405, 328, 271, 456, 388, 335, 292, 512,
	454, 405, 364, 328, 298, 271, 496, 456, 420, 388, 360, 335, 312, 292, 273, 512,
	482, 454, 428, 405, 383, 364, 345, 328, 312, 298, 284, 271, 259, 496, 475, 456,
	437, 420, 404, 388, 374, 360, 347, 335, 323, 312, 302, 292, 282, 273, 265, 512,
	497, 482, 468, 454, 441, 428, 417, 405, 394, 383, 373, 364, 354, 345, 337, 328,
	320, 312, 305, 298, 291, 284, 278, 271, 265, 259, 507, 496, 485, 475, 465, 456,
	446, 437, 428, 420, 412, 404, 396, 388, 381, 374, 367, 360, 354, 347, 341, 335,
	329, 323, 318, 312, 307, 302, 297, 292, 287, 282, 278, 273, 269, 265, 261, 512,
	505, 497, 489, 482, 475, 468, 461, 454, 447, 441, 435, 428, 422, 417, 411, 405,
	399, 394, 389, 383, 378, 373, 368, 364, 359, 354, 350, 345, 341, 337, 332, 328,
	324, 320, 316, 312, 309, 305, 301, 298, 294, 291, 287, 284, 281, 278, 274, 271,
	268, 265, 262, 259, 257, 507, 501, 496, 491, 485, 480, 475, 470, 465, 460, 456,
	451, 446, 442, 437, 433, 428, 424, 420, 416, 412, 408, 404, 400, 396, 392, 388,
	385, 381, 377, 374, 370, 367, 363, 360, 357, 354, 350, 347, 344, 341, 338, 335,
	332, 329, 326, 323, 320, 318, 315, 312, 310, 307, 304, 302, 299, 297, 294, 292,
	289, 287, 285, 282, 280, 278, 275, 273, 271, 269, 267, 265, 263, 261, 259,
}

var shgTable = []uint32{
	9, 11, 12, 13, 13, 14, 14, 15, 15, 15, 15, 16, 16, 16, 16, 17,
	17, 17, 17, 17, 17, 17, 18, 18, 18, 18, 18, 18, 18, 18, 18, 19,
	19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 20, 20, 20,
	20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 21,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 22, 22, 22, 22, 22, 22,
	22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22,
	22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
}

// newStackRing builds the circular list of div entries used by the sliding
// sums and returns its start together with the entry radius+1 steps in.
func newStackRing(div, radiusPlus1 uint32) (start, end *blurstack) {
	start = &blurstack{}
	stack := start
	for i := uint32(1); i < div; i++ {
		stack.next = &blurstack{}
		stack = stack.next
		if i == radiusPlus1 {
			end = stack
		}
	}
	stack.next = start
	return start, end
}

// Stackblur applies a fast gaussian-like blur of the given radius to a
// grayscale image. The image is blurred in place and returned for chaining.
func Stackblur(img *image.Gray, radius uint32) *image.Gray {
	if radius < 1 {
		return img
	}
	if int(radius) >= len(mulTable) {
		radius = uint32(len(mulTable) - 1)
	}

	width := uint32(img.Bounds().Dx())
	height := uint32(img.Bounds().Dy())
	stride := uint32(img.Stride)

	var (
		widthMinus1  = width - 1
		heightMinus1 = height - 1
		radiusPlus1  = radius + 1
		sumFactor    = radiusPlus1 * (radiusPlus1 + 1) / 2
		div          = radius + radius + 1
		mulSum       = mulTable[radius]
		shgSum       = shgTable[radius]
	)

	stackStart, stackEnd := newStackRing(div, radiusPlus1)

	for y := uint32(0); y < height; y++ {
		row := y * stride

		p := uint32(img.Pix[row])
		outSum := radiusPlus1 * p
		sum := sumFactor * p
		inSum := uint32(0)

		stack := stackStart
		for i := uint32(0); i < radiusPlus1; i++ {
			stack.v = p
			stack = stack.next
		}
		for i := uint32(1); i < radiusPlus1; i++ {
			d := i
			if widthMinus1 < i {
				d = widthMinus1
			}
			p = uint32(img.Pix[row+d])
			stack.v = p
			sum += p * (radiusPlus1 - i)
			inSum += p
			stack = stack.next
		}

		stackIn, stackOut := stackStart, stackEnd
		for x := uint32(0); x < width; x++ {
			img.Pix[row+x] = uint8((sum * mulSum) >> shgSum)

			sum -= outSum
			outSum -= stackIn.v

			d := x + radiusPlus1
			if d > widthMinus1 {
				d = widthMinus1
			}
			stackIn.v = uint32(img.Pix[row+d])
			inSum += stackIn.v
			sum += inSum
			stackIn = stackIn.next

			outSum += stackOut.v
			inSum -= stackOut.v
			stackOut = stackOut.next
		}
	}

	for x := uint32(0); x < width; x++ {
		p := uint32(img.Pix[x])
		outSum := radiusPlus1 * p
		sum := sumFactor * p
		inSum := uint32(0)

		stack := stackStart
		for i := uint32(0); i < radiusPlus1; i++ {
			stack.v = p
			stack = stack.next
		}
		for i := uint32(1); i < radiusPlus1; i++ {
			d := i
			if heightMinus1 < i {
				d = heightMinus1
			}
			p = uint32(img.Pix[d*stride+x])
			stack.v = p
			sum += p * (radiusPlus1 - i)
			inSum += p
			stack = stack.next
		}

		stackIn, stackOut := stackStart, stackEnd
		for y := uint32(0); y < height; y++ {
			img.Pix[y*stride+x] = uint8((sum * mulSum) >> shgSum)

			sum -= outSum
			outSum -= stackIn.v

			d := y + radiusPlus1
			if d > heightMinus1 {
				d = heightMinus1
			}
			stackIn.v = uint32(img.Pix[d*stride+x])
			inSum += stackIn.v
			sum += inSum
			stackIn = stackIn.next

			outSum += stackOut.v
			inSum -= stackOut.v
			stackOut = stackOut.next
		}
	}

	return img
}
