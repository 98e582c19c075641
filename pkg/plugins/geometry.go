package plugins

import "github.com/Fepozopo/pictool/pkg/pixel"

// Flip mirrors the image horizontally (the default, reversing pixels within
// each row) or vertically (reversing the order of the rows). Either way the
// operation is an involution: applying it twice restores the original.
func Flip(img *pixel.Buffer, vertical bool) bool {
	if vertical {
		rows := img.Rows()
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	} else {
		for _, row := range img.Rows() {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
	}
	return true
}

// Transpose swaps rows and columns, turning a HxW image into a WxH one.
// The new row table is installed through ReplaceRows so the buffer handle
// keeps its identity; callers holding the same handle see the new shape.
// An empty buffer (or one with an empty first row) is left alone, but the
// call still counts as a mutation.
func Transpose(img *pixel.Buffer) bool {
	height, width := img.Dimensions()
	if height == 0 || width == 0 {
		return true
	}
	rows := img.Rows()
	transposed := make([][]pixel.RGB, width)
	for c := 0; c < width; c++ {
		row := make([]pixel.RGB, height)
		for r := 0; r < height; r++ {
			row[r] = rows[r][c]
		}
		transposed[c] = row
	}
	img.ReplaceRows(transposed)
	return true
}

// Rotate turns the image 90 degrees left (the default) or right. A left
// rotation is a transpose followed by a vertical flip; a right rotation is
// a vertical flip followed by a transpose. Four applications with the same
// direction restore the original image.
func Rotate(img *pixel.Buffer, right bool) bool {
	if right {
		Flip(img, true)
		Transpose(img)
	} else {
		Transpose(img)
		Flip(img, true)
	}
	return true
}
