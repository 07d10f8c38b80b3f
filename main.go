package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/cronkeeper/internal/adapters/in/cli"
	buildinfo "github.com/bnema/cronkeeper/pkg/version"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	buildinfo.Set(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}
}
