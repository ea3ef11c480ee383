package main

import (
	"os"

	"github.com/dotvar/dotvar/cmd/dotvar/commands"
	"github.com/dotvar/dotvar/pkg/output"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		output.NewRenderer(os.Stderr, false).RenderError(err)
		os.Exit(1)
	}
}
