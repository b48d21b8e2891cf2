package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/arcanaland/shuffledraw/cmd"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	if err := fang.Execute(
		context.Background(),
		cmd.RootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
