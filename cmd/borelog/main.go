// Command borelog lays out borehole logs from TOML files.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/tsawler/borelog/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
