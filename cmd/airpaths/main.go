package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/airpaths/cli"
)

var version string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cli.Execute(ctx, version); err != nil {
		cancel()
		os.Exit(1)
	}
}
