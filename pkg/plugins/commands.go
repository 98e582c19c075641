// Package plugins: the transform library and its authoritative command
// registry.
//
// Every entry in Commands describes one transform: its name, its ordered
// parameter list (the first parameter is always the image buffer), and a
// default value for every parameter after the first. Keep this list
// up-to-date when you add or modify transforms so callers (CLI, docs, help
// text) can read a single source of truth.

package plugins

import (
	"os"

	"github.com/Fepozopo/pictool/pkg/pixel"
)

// CommandSpec defines a single transform and its parameter contract.
// Params is order-significant and Params[0] names the buffer parameter;
// Defaults holds one value per remaining parameter, in the same order. The
// dispatcher re-checks that shape on every resolve to guard against
// malformed registration.
type CommandSpec struct {
	Name        string
	Params      []string
	Defaults    []Value
	Usage       string
	Description string

	// Run binds the merged arguments and invokes the transform. It reports
	// whether the buffer was mutated; callers only persist when it is true.
	Run func(img *pixel.Buffer, args Args) (bool, error)
}

// Commands is the authoritative list of registered transforms.
var Commands = []CommandSpec{
	{
		Name:        "display",
		Params:      []string{"image"},
		Usage:       "display",
		Description: "Pretty-print every pixel; never modifies the image.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			return Display(os.Stdout, img), nil
		},
	},
	{
		Name:        "dered",
		Params:      []string{"image"},
		Usage:       "dered",
		Description: "Remove all red from the image.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			return Dered(img), nil
		},
	},
	{
		Name:        "mono",
		Params:      []string{"image", "sepia"},
		Defaults:    []Value{BoolValue(false)},
		Usage:       "mono [--sepia=True]",
		Description: "Convert to grayscale, or sepia tone with --sepia=True.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			sepia, err := args.Bool("sepia")
			if err != nil {
				return false, err
			}
			return Mono(img, sepia), nil
		},
	},
	{
		Name:        "flip",
		Params:      []string{"image", "vertical"},
		Defaults:    []Value{BoolValue(false)},
		Usage:       "flip [--vertical=True]",
		Description: "Mirror horizontally, or vertically with --vertical=True.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			vertical, err := args.Bool("vertical")
			if err != nil {
				return false, err
			}
			return Flip(img, vertical), nil
		},
	},
	{
		Name:        "transpose",
		Params:      []string{"image"},
		Usage:       "transpose",
		Description: "Swap rows and columns (width and height trade places).",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			return Transpose(img), nil
		},
	},
	{
		Name:        "rotate",
		Params:      []string{"image", "right"},
		Defaults:    []Value{BoolValue(false)},
		Usage:       "rotate [--right=True]",
		Description: "Rotate 90 degrees left, or right with --right=True.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			right, err := args.Bool("right")
			if err != nil {
				return false, err
			}
			return Rotate(img, right), nil
		},
	},
	{
		Name:        "vignette",
		Params:      []string{"image"},
		Usage:       "vignette",
		Description: "Darken pixels by their distance from the image center.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			return Vignette(img), nil
		},
	},
	{
		Name:        "blur",
		Params:      []string{"image", "radius"},
		Defaults:    []Value{IntValue(5)},
		Usage:       "blur [--radius=N]",
		Description: "Box blur over a clamped square window of side 2*radius+1.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			radius, err := args.Int("radius")
			if err != nil {
				return false, err
			}
			return Blur(img, radius)
		},
	},
	{
		Name:        "pixellate",
		Params:      []string{"image", "step"},
		Defaults:    []Value{IntValue(10)},
		Usage:       "pixellate [--step=N]",
		Description: "Replace each step x step block with its average color.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			step, err := args.Int("step")
			if err != nil {
				return false, err
			}
			return Pixellate(img, step)
		},
	},
	{
		Name:        "scramble",
		Params:      []string{"image", "amount", "seed"},
		Defaults:    []Value{IntValue(500), IntValue(0)},
		Usage:       "scramble [--amount=N] [--seed=N]",
		Description: "Randomize the color of N pixel draws; seed 0 uses the clock.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			amount, err := args.Int("amount")
			if err != nil {
				return false, err
			}
			seed, err := args.Int("seed")
			if err != nil {
				return false, err
			}
			return Scramble(img, amount, int64(seed)), nil
		},
	},
	{
		Name:        "brighten",
		Params:      []string{"image", "factor"},
		Defaults:    []Value{FloatValue(1.25)},
		Usage:       "brighten [--factor=F]",
		Description: "Multiply color channels by a factor, capped at 255.",
		Run: func(img *pixel.Buffer, args Args) (bool, error) {
			factor, err := args.Float("factor")
			if err != nil {
				return false, err
			}
			return Brighten(img, factor), nil
		},
	},
}
