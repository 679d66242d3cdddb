package main

import (
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.0.0.dev0"

func main() {
	rootCmd := newRootCmd(newRuntime())
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
