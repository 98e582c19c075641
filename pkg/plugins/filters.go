package plugins

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Fepozopo/pictool/pkg/parallel"
	"github.com/Fepozopo/pictool/pkg/pixel"
)

// Vignette darkens pixels proportionally to their distance from the image
// center, simulating an antique lens. The center is (height/2, width/2)
// with integer division, and H is the Euclidean distance from the center to
// the top-left corner. Each color channel is multiplied by 1 - (d/H)^2 and
// rounded; alpha is untouched.
//
// The factor is not clamped below zero. H is measured to the top-left
// corner, which on an integer grid is always the farthest pixel from the
// center, so the factor stays non-negative in practice. Rounding is half
// to even, like every other rounding step in this package.
func Vignette(img *pixel.Buffer) bool {
	height, width := img.Dimensions()
	if height == 0 || width == 0 {
		return true
	}
	cr := height / 2
	cc := width / 2
	h := math.Sqrt(float64(cr*cr + cc*cc))
	if h == 0 {
		// degenerate 1x1 image: the only pixel is the center
		return true
	}
	rows := img.Rows()
	for r := range rows {
		for c := range rows[r] {
			d := math.Sqrt(float64((r-cr)*(r-cr) + (c-cc)*(c-cc)))
			factor := 1 - (d/h)*(d/h)
			p := &rows[r][c]
			p.Red = int(math.RoundToEven(float64(p.Red) * factor))
			p.Green = int(math.RoundToEven(float64(p.Green) * factor))
			p.Blue = int(math.RoundToEven(float64(p.Blue) * factor))
		}
	}
	return true
}

// Blur applies a box blur: every pixel becomes the per-channel average
// (including alpha) of the square window of side 2*radius+1 centered on it,
// clamped at the image edges. All averages are computed from a snapshot of
// the original pixels, never from partially blurred values, so rows can be
// processed in parallel without changing the result.
func Blur(img *pixel.Buffer, radius int) (bool, error) {
	if radius <= 0 {
		return false, fmt.Errorf("blur radius must be > 0, got %d", radius)
	}
	height, width := img.Dimensions()
	if height == 0 || width == 0 {
		return true, nil
	}
	original := img.Clone().Rows()
	rows := img.Rows()

	pool := parallel.Start(0)
	for r := 0; r < height; r++ {
		pool.Do(func() {
			rowMin := max(0, r-radius)
			rowMax := min(height-1, r+radius)
			for c := 0; c < width; c++ {
				colMin := max(0, c-radius)
				colMax := min(width-1, c+radius)
				var red, green, blue, alpha, count int
				for i := rowMin; i <= rowMax; i++ {
					for j := colMin; j <= colMax; j++ {
						p := original[i][j]
						red += p.Red
						green += p.Green
						blue += p.Blue
						alpha += p.Alpha
						count++
					}
				}
				rows[r][c] = pixel.RGB{
					Red:   roundedAverage(red, count),
					Green: roundedAverage(green, count),
					Blue:  roundedAverage(blue, count),
					Alpha: roundedAverage(alpha, count),
				}
			}
		})
	}
	pool.Wait()
	return true, nil
}

// Pixellate partitions the image into non-overlapping step x step blocks in
// raster order starting at (0,0), with edge blocks clipped to the image
// bounds. Each block is replaced by its per-channel average (including
// alpha). Blocks never overlap, so each one can be averaged and written
// back before the next is read; no snapshot is needed.
func Pixellate(img *pixel.Buffer, step int) (bool, error) {
	if step <= 0 {
		return false, fmt.Errorf("pixellate step must be > 0, got %d", step)
	}
	height, width := img.Dimensions()
	rows := img.Rows()
	for row := 0; row < height; row += step {
		for col := 0; col < width; col += step {
			rowMax := min(row+step, height)
			colMax := min(col+step, width)
			var red, green, blue, alpha, count int
			for r := row; r < rowMax; r++ {
				for c := col; c < colMax; c++ {
					p := rows[r][c]
					red += p.Red
					green += p.Green
					blue += p.Blue
					alpha += p.Alpha
					count++
				}
			}
			avg := pixel.RGB{
				Red:   roundedAverage(red, count),
				Green: roundedAverage(green, count),
				Blue:  roundedAverage(blue, count),
				Alpha: roundedAverage(alpha, count),
			}
			for r := row; r < rowMax; r++ {
				for c := col; c < colMax; c++ {
					rows[r][c] = avg
				}
			}
		}
	}
	return true, nil
}

// Scramble performs amount independent draws of a random coordinate (with
// replacement) and assigns that pixel uniformly random color channels in
// [0,255], preserving whatever alpha the pixel has at the moment of the
// draw. amount=0 leaves the image unchanged but still reports a mutation.
// seed=0 seeds from the clock; any other seed makes the run reproducible.
func Scramble(img *pixel.Buffer, amount int, seed int64) bool {
	height, width := img.Dimensions()
	if height == 0 || width == 0 {
		return true
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	rows := img.Rows()
	for n := 0; n < amount; n++ {
		r := rng.Intn(height)
		c := rng.Intn(width)
		rows[r][c] = pixel.RGB{
			Red:   rng.Intn(256),
			Green: rng.Intn(256),
			Blue:  rng.Intn(256),
			Alpha: rows[r][c].Alpha,
		}
	}
	return true
}

func roundedAverage(total, count int) int {
	return int(math.RoundToEven(float64(total) / float64(count)))
}
