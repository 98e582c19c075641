package plugins

import (
	"math"

	"github.com/Fepozopo/pictool/pkg/pixel"
)

// Dered sets the red channel to 0 for every pixel. The other channels,
// including alpha, are untouched. Always returns true.
func Dered(img *pixel.Buffer) bool {
	for _, row := range img.Rows() {
		for c := range row {
			row[c].Red = 0
		}
	}
	return true
}

// Mono converts the image to grayscale, or sepia tone if sepia is true.
//
// Brightness is computed in floating point as 0.3*R + 0.6*G + 0.1*B and
// truncated toward zero when written back. Grayscale sets all three color
// channels to the brightness; sepia keeps red at the brightness and scales
// green and blue to 0.6 and 0.4 of it. Alpha is unchanged. Since the
// weights sum to 1.0, grayscale conversion is idempotent: truncating an
// already-gray pixel reproduces itself exactly.
func Mono(img *pixel.Buffer, sepia bool) bool {
	for _, row := range img.Rows() {
		for c := range row {
			p := &row[c]
			brightness := 0.3*float64(p.Red) + 0.6*float64(p.Green) + 0.1*float64(p.Blue)
			if sepia {
				p.Red = int(brightness)
				p.Green = int(0.6 * brightness)
				p.Blue = int(0.4 * brightness)
			} else {
				gray := int(brightness)
				p.Red = gray
				p.Green = gray
				p.Blue = gray
			}
		}
	}
	return true
}

// Brighten multiplies the color channels by factor, rounding half to even
// and clamping at 255. There is no lower clamp. Alpha is unchanged.
func Brighten(img *pixel.Buffer, factor float64) bool {
	for _, row := range img.Rows() {
		for c := range row {
			p := &row[c]
			p.Red = brightenChannel(p.Red, factor)
			p.Green = brightenChannel(p.Green, factor)
			p.Blue = brightenChannel(p.Blue, factor)
		}
	}
	return true
}

func brightenChannel(v int, factor float64) int {
	n := int(math.RoundToEven(float64(v) * factor))
	if n > 255 {
		n = 255
	}
	return n
}
