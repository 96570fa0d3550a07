package main

import (
	"os"

	"github.com/idilsaglam/accordion/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
