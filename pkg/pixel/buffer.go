package pixel

import "image"

// Buffer is a rectangular, mutable table of pixels representing one image.
// Row 0 is the top of the image. A Buffer is exclusively owned by a single
// run of the pipeline; transforms receive the same handle and either mutate
// pixels in place or swap the whole row table through ReplaceRows, so every
// holder of the handle observes the change, including shape changes.
type Buffer struct {
	rows [][]RGB
}

// NewBuffer wraps an existing row table. The rows are used directly, not
// copied.
func NewBuffer(rows [][]RGB) *Buffer {
	return &Buffer{rows: rows}
}

// NewUniform returns a height x width buffer with every pixel set to p.
// Handy for tests and fixtures.
func NewUniform(height, width int, p RGB) *Buffer {
	rows := make([][]RGB, height)
	for r := range rows {
		row := make([]RGB, width)
		for c := range row {
			row[c] = p
		}
		rows[r] = row
	}
	return &Buffer{rows: rows}
}

// Dimensions returns (height, width). Width is 0 for an empty buffer.
func (b *Buffer) Dimensions() (height, width int) {
	if len(b.rows) == 0 {
		return 0, 0
	}
	return len(b.rows), len(b.rows[0])
}

// Get returns the pixel at (row, col). Callers are expected to stay in
// bounds; out-of-range access panics like any slice access.
func (b *Buffer) Get(row, col int) RGB {
	return b.rows[row][col]
}

// Set overwrites the pixel at (row, col).
func (b *Buffer) Set(row, col int, p RGB) {
	b.rows[row][col] = p
}

// Rows exposes the underlying row table for transforms that walk the whole
// image. Mutations through the returned slices are mutations of the buffer.
func (b *Buffer) Rows() [][]RGB {
	return b.rows
}

// ReplaceRows atomically swaps the entire row table. Shape-changing
// transforms (transpose, rotate) use this so the buffer handle keeps its
// identity while its dimensions change.
func (b *Buffer) ReplaceRows(rows [][]RGB) {
	b.rows = rows
}

// Verify reports whether the buffer still satisfies its invariants:
// non-empty, every row present, and every row the same non-zero length.
// It is called defensively before a buffer that passed through a transform
// is persisted; a false result is fatal for the run. Channel values are
// deliberately not range-checked, since transforms may legitimately leave
// out-of-range values.
func (b *Buffer) Verify() bool {
	if b == nil || len(b.rows) == 0 {
		return false
	}
	width := len(b.rows[0])
	if width == 0 {
		return false
	}
	for _, row := range b.rows {
		if len(row) != width {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the buffer. Blur uses this to snapshot the
// original pixels before writing averaged values back.
func (b *Buffer) Clone() *Buffer {
	rows := make([][]RGB, len(b.rows))
	for r, row := range b.rows {
		dup := make([]RGB, len(row))
		copy(dup, row)
		rows[r] = dup
	}
	return &Buffer{rows: rows}
}

// FromImage converts any image.Image into a Buffer, normalizing to
// non-premultiplied 8-bit RGBA. progress, if non-nil, is called once per
// pixel in raster order so callers can render progress output.
func FromImage(src image.Image, progress func()) *Buffer {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	nrgba, ok := src.(*image.NRGBA)
	if !ok {
		tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
		idx := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, a := src.At(x, y).RGBA()
				// 16-bit [0,65535] down to 8-bit
				tmp.Pix[idx+0] = uint8(r >> 8)
				tmp.Pix[idx+1] = uint8(g >> 8)
				tmp.Pix[idx+2] = uint8(b >> 8)
				tmp.Pix[idx+3] = uint8(a >> 8)
				idx += 4
			}
		}
		nrgba = tmp
	}
	rows := make([][]RGB, h)
	for y := 0; y < h; y++ {
		row := make([]RGB, w)
		for x := 0; x < w; x++ {
			i := nrgba.PixOffset(x+nrgba.Rect.Min.X, y+nrgba.Rect.Min.Y)
			row[x] = RGB{
				Red:   int(nrgba.Pix[i+0]),
				Green: int(nrgba.Pix[i+1]),
				Blue:  int(nrgba.Pix[i+2]),
				Alpha: int(nrgba.Pix[i+3]),
			}
			if progress != nil {
				progress()
			}
		}
		rows[y] = row
	}
	return &Buffer{rows: rows}
}

// NRGBA converts the buffer back into a stdlib image for encoding. Channel
// values are clamped to [0,255] here, at the codec boundary only.
func (b *Buffer) NRGBA(progress func()) *image.NRGBA {
	height, width := b.Dimensions()
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := b.rows[y][x]
			i := out.PixOffset(x, y)
			out.Pix[i+0] = clampChannel(p.Red)
			out.Pix[i+1] = clampChannel(p.Green)
			out.Pix[i+2] = clampChannel(p.Blue)
			out.Pix[i+3] = clampChannel(p.Alpha)
			if progress != nil {
				progress()
			}
		}
	}
	return out
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
