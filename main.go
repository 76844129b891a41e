package main

import (
	"os"

	"debate-split/cmd"
	"debate-split/pkg/signals"
)

func main() {
	ctx := signals.SetupSignalHandler()
	if err := cmd.NewRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
