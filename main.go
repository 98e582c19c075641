package main

import (
	"os"

	"github.com/Fepozopo/pictool/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}
