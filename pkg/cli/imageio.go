package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/Fepozopo/pictool/pkg/pixel"
)

// progressBlocks is how many dots a full load or save prints.
const progressBlocks = 10

// LoadImage decodes the file at path into a pixel.Buffer, normalizing
// whatever the decoder produced to 4-channel non-premultiplied RGBA. It
// prints coarse progress dots while the buffer fills. Format support is
// whatever the registered decoders cover (PNG, JPEG, GIF, plus the x/image
// formats imported above).
func LoadImage(path string) (*pixel.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not load the file %q: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not load the file %q: %w", path, err)
	}

	fmt.Printf("Loading %q", path)
	bounds := img.Bounds()
	block := max(bounds.Dx()*bounds.Dy()/progressBlocks, 1)
	seen := 0
	buf := pixel.FromImage(img, func() {
		if seen%block == 0 {
			fmt.Print(".")
		}
		seen++
	})
	fmt.Println("done")
	return buf, nil
}

// SaveImage encodes the buffer to path. Output is always PNG regardless of
// the path's extension: the pipeline normalizes to one fixed format on the
// way out just as it normalizes to one pixel format on the way in.
func SaveImage(buf *pixel.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not save the file %q: %w", path, err)
	}
	defer f.Close()

	fmt.Printf("Saving %q", path)
	height, width := buf.Dimensions()
	block := max(height*width/progressBlocks, 1)
	seen := 0
	img := buf.NRGBA(func() {
		if seen%block == 0 {
			fmt.Print(".")
		}
		seen++
	})
	if err := png.Encode(f, img); err != nil {
		fmt.Println()
		return fmt.Errorf("could not save the file %q: %w", path, err)
	}
	fmt.Println("done")
	return nil
}
