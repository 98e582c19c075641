package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Fepozopo/pictool/pkg/plugins"
)

func usage() string {
	return "usage: pictool command [options] input [output]"
}

// Run executes one invocation of the tool and returns the process exit
// code. The flow is strictly one direction: extract and coerce options,
// resolve the command against the registry (before the possibly slow
// decode, so configuration mistakes cost nothing), load the image, invoke
// the bound transform, and encode only when the transform reported a
// mutation and an output path was given.
func Run(argv []string) int {
	return run(argv, plugins.DefaultRegistry())
}

func run(argv []string, registry *plugins.Registry) int {
	options, rest := ExtractOptions(argv[1:])

	// Maintenance verbs sit outside the transform registry.
	if len(rest) == 1 {
		switch rest[0] {
		case "version":
			fmt.Printf("pictool %s\n", Version)
			return 0
		case "update":
			if err := CheckForUpdates(); err != nil {
				slog.Error("update check failed", "error", err)
				return 1
			}
			return 0
		}
	}

	if len(rest) != 2 && len(rest) != 3 {
		fmt.Fprintln(os.Stderr, usage())
		return 2
	}
	command, input := rest[0], rest[1]

	call, err := registry.Resolve(command, options)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	buf, err := LoadImage(input)
	if err != nil {
		slog.Error("decode failed", "file", input, "error", err)
		return 1
	}

	fmt.Printf("Processing %q", input)
	start := time.Now()
	mutated, err := call.Invoke(buf)
	if err != nil {
		fmt.Println()
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println("..done")
	fmt.Printf("Time: %s\n", time.Since(start))

	if mutated && len(rest) == 3 {
		if !buf.Verify() {
			// A buffer that fails verification is never persisted.
			slog.Error("transform corrupted the image buffer, refusing to save",
				"command", call.Name())
			return 1
		}
		if err := SaveImage(buf, rest[2]); err != nil {
			slog.Error("encode failed", "file", rest[2], "error", err)
			return 1
		}
	}
	return 0
}
