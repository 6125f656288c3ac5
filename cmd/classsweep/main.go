// Package main is the entry point for the classsweep application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/lejos-tools/classsweep/internal/bootstrap"
	"github.com/lejos-tools/classsweep/internal/buildinfo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := bootstrap.Run(ctx, os.Args)
	stop()
	os.Exit(code)
}
