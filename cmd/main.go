package main

import (
	"os"

	"qasml/internal/build"
	"qasml/internal/cli"
	"qasml/internal/platform"
)

// Main entry point for qasml.
func main() {
	app := &cli.App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Runner: build.ExecRunner{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
		Host:    platform.CurrentHost(),
		TempDir: os.TempDir(),
	}

	os.Exit(app.Run(os.Args[1:]))
}
