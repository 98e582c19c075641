package plugins

import (
	"fmt"
	"io"
	"strings"

	"github.com/Fepozopo/pictool/pkg/pixel"
)

// Display pretty-prints the image pixels to w, one per line, laid out like
// a nested literal so the values can be eyeballed after a transform. It
// never modifies the image and always returns false, so the pipeline never
// persists after it.
func Display(w io.Writer, img *pixel.Buffer) bool {
	height, width := img.Dimensions()
	rows := img.Rows()

	// widest pixel string, for column padding
	maxsize := 0
	for _, row := range rows {
		for _, p := range row {
			if n := len(p.String()); n > maxsize {
				maxsize = n
			}
		}
	}

	fmt.Fprintln(w)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			middle := rows[r][c].String()
			padding := maxsize - len(middle)

			prefix := "      "
			if r == 0 && c == 0 {
				prefix = "[  [  "
			} else if c == 0 {
				prefix = "   [  "
			}

			suffix := ","
			if r == height-1 && c == width-1 {
				suffix = strings.Repeat(" ", padding) + " ]  ]"
			} else if c == width-1 {
				suffix = strings.Repeat(" ", padding) + " ],"
			}

			fmt.Fprintln(w, prefix+middle+suffix)
		}
	}
	return false
}
