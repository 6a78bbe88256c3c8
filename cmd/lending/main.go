// Command lending runs one book lending command against the campus database
// and prints its outcome as JSON on stdout.
//
// Exit codes: 0 = success, 1 = command failed, 2 = startup error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/campus-lending/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}
