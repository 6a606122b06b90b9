package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"ViewCounter/internal/app"
	"ViewCounter/internal/config"
	"ViewCounter/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCLI().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:   "viewcounter",
		Usage:  "collect view counts of YouTube videos into a CSV file",
		Flags:  flags(),
		Action: run,
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(c, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.File)
	application := app.New(cfg, logger)

	if err := application.Run(c.Context); err != nil {
		logger.Error("application stopped", "error", err)
		return err
	}
	return nil
}
