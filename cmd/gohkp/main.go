package main

import (
	"os"

	"github.com/gohkp/gohkp/cli"
)

func main() {
	os.Exit(cli.Main())
}
