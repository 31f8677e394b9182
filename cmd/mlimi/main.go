package main

import (
	"os"

	"github.com/terraincognita07/mlimi/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
