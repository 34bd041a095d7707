package cli

import (
	"github.com/gohkp/gohkp/colour"
	"github.com/gohkp/gohkp/out"
)

func printSuccess(message string) {
	out.Print(" " + colour.Success("▸   "+message) + "\n")
}

func printFailed(message string) {
	out.Print(" " + colour.Failure("▸   "+message) + "\n")
}
