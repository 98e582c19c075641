package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Fepozopo/pictool/pkg/pixel"
	"github.com/Fepozopo/pictool/pkg/plugins"
)

func TestExtractOptions(t *testing.T) {
	opts, rest := ExtractOptions([]string{
		"mono", "--sepia=True", "in.png", "--level=4", "--ratio=0.5", "out.png",
	})
	if len(rest) != 3 || rest[0] != "mono" || rest[1] != "in.png" || rest[2] != "out.png" {
		t.Fatalf("positional = %v", rest)
	}
	if v := opts["sepia"]; v != plugins.BoolValue(true) {
		t.Fatalf("sepia = %v", v)
	}
	if v := opts["level"]; v != plugins.IntValue(4) {
		t.Fatalf("level = %v", v)
	}
	if v := opts["ratio"]; v != plugins.FloatValue(0.5) {
		t.Fatalf("ratio = %v", v)
	}
}

func TestExtractOptionsLeavesNonOptionsAlone(t *testing.T) {
	// tokens without "=" or without the "--" prefix are positional
	opts, rest := ExtractOptions([]string{"--verbose", "-k=v", "cmd", "file--x=1.png"})
	if len(opts) != 0 {
		t.Fatalf("options = %v, want none", opts)
	}
	if len(rest) != 3 {
		t.Fatalf("positional = %v", rest)
	}
}

func TestRunRejectsBadArgCounts(t *testing.T) {
	if code := Run([]string{"pictool"}); code != 2 {
		t.Fatalf("no arguments: exit %d, want 2", code)
	}
	if code := Run([]string{"pictool", "mono", "a", "b", "c"}); code != 2 {
		t.Fatalf("too many arguments: exit %d, want 2", code)
	}
}

func TestRunRejectsUnknownCommandBeforeDecode(t *testing.T) {
	// the input path does not exist; resolution must fail first
	if code := Run([]string{"pictool", "sharpen", "no-such-file.png"}); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}

func TestRunRejectsUnrecognizedOptionsBeforeDecode(t *testing.T) {
	if code := Run([]string{"pictool", "mono", "--radius=5", "no-such-file.png"}); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}

func TestRunRefusesToSaveCorruptedBuffer(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	if err := SaveImage(pixel.NewUniform(2, 2, pixel.New(9, 9, 9)), input); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	output := filepath.Join(dir, "out.png")

	// a transform that swaps in a ragged row table and still reports success
	registry := plugins.NewRegistry([]plugins.CommandSpec{{
		Name:        "shear",
		Params:      []string{"image"},
		Usage:       "shear input [output]",
		Description: "Corrupts the buffer shape.",
		Run: func(img *pixel.Buffer, _ plugins.Args) (bool, error) {
			img.ReplaceRows([][]pixel.RGB{
				{pixel.New(1, 1, 1), pixel.New(2, 2, 2)},
				{pixel.New(3, 3, 3)},
			})
			return true, nil
		},
	}})

	if code := run([]string{"pictool", "shear", input, output}, registry); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Fatalf("output exists after refused save (stat err = %v)", err)
	}
}
