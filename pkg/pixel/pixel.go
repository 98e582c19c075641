package pixel

import "fmt"

// RGB is a single 4-channel pixel. Channels are plain ints, not uint8:
// transforms are free to leave values outside [0,255] (vignette can produce
// negative channels, for example) and nothing at this level clamps them.
// Clamping, where it happens, is each transform's responsibility.
type RGB struct {
	Red   int
	Green int
	Blue  int
	Alpha int
}

// New returns a fully opaque pixel (alpha 255).
func New(red, green, blue int) RGB {
	return RGB{Red: red, Green: green, Blue: blue, Alpha: 255}
}

// NewAlpha returns a pixel with an explicit alpha channel.
func NewAlpha(red, green, blue, alpha int) RGB {
	return RGB{Red: red, Green: green, Blue: blue, Alpha: alpha}
}

func (p RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d, %d)", p.Red, p.Green, p.Blue, p.Alpha)
}
