package main

import (
	"os"

	"github.com/ohodson/tiny-lisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
