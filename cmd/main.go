/*
Package main is the entry point for the ysocial server.

The default command loads configuration, initializes logging, the database pool,
media storage and metrics, serves HTTP until SIGINT or SIGTERM and then shuts the
server down gracefully. The migrate command applies or inspects schema migrations.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "ysocial",
		Usage:  "Social network API server",
		Action: runServe,
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		stop()
		os.Exit(1)
	}
}
