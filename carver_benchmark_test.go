package imageproc

import (
	"fmt"
	"testing"
)

func Benchmark_Carver(b *testing.B) {
	img := gradientGrayImage(100, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seam, err := FindVerticalSeam(img)
		if err != nil {
			b.FailNow()
		}
		if _, err := RemoveVerticalSeam(img, seam); err != nil {
			b.FailNow()
		}
	}
}

func Benchmark_ShrinkWidth(b *testing.B) {
	for _, shrinkBy := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("s100_r%d", shrinkBy), func(b *testing.B) {
			img := gradientGrayImage(100, 100)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := ShrinkWidth(img, 100-shrinkBy); err != nil {
					b.FailNow()
				}
			}
		})
	}
}
