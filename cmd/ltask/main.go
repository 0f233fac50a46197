// Package main is the entry point for the ltask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ltask/internal/backend/googletasks"
	"ltask/internal/cli"
	"ltask/internal/commands"
	"ltask/internal/config"
	"ltask/internal/service"
)

func main() {
	// Cancel on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Remote backend factory for sync
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return googletasks.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
