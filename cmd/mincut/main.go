package main

import (
	"context"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/katalvlaran/mincut/internal/cli"
)

// version is stamped with -ldflags "-X main.version=..." on release builds.
var version = ""

// buildVersion prefers the stamped version, then the module version recorded
// by `go install`, then "dev".
func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	// Ctrl+C or SIGTERM cancels any trials in flight
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx, buildVersion())
}
