package main

import (
	"github.com/urfave/cli/v2"

	"ViewCounter/internal/config"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "file with one video URL per line"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "CSV file to write"},
		&cli.BoolFlag{Name: "skipTotals", Usage: "do not append the totals row"},
		&cli.BoolFlag{Name: "printTotals", Usage: "print the total view count"},
		&cli.BoolFlag{Name: "useCommas", Usage: "separate fields with ',' instead of ';'"},
		&cli.BoolFlag{Name: "addUrl", Usage: "add the video URL column"},
		&cli.BoolFlag{Name: "withDate", Usage: "add the publication date column"},
		&cli.BoolFlag{Name: "tedx", Usage: "split TEDx titles into speaker and title"},
		&cli.BoolFlag{Name: "tedxstuttgart", Usage: "like --tedx, also strip academic titles and fix known names"},
		&cli.StringFlag{Name: "log-level", Usage: "error, warn, info or debug"},
		&cli.StringFlag{Name: "log-file", Usage: "also append logs to this file"},
	}
}

// applyFlags overrides config values with flags given on the command line.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("skipTotals") {
		cfg.CSV.SkipTotals = c.Bool("skipTotals")
	}
	if c.IsSet("printTotals") {
		cfg.CSV.PrintTotals = c.Bool("printTotals")
	}
	if c.IsSet("useCommas") {
		if c.Bool("useCommas") {
			cfg.CSV.Separator = config.SeparatorComma
		} else {
			cfg.CSV.Separator = config.SeparatorSemicolon
		}
	}
	if c.IsSet("addUrl") {
		cfg.CSV.AddURL = c.Bool("addUrl")
	}
	if c.IsSet("withDate") {
		cfg.CSV.WithDate = c.Bool("withDate")
	}

	// tedxstuttgart implies tedx
	switch {
	case c.Bool("tedxstuttgart"):
		cfg.Titles.Mode = "stripped"
	case c.Bool("tedx"):
		cfg.Titles.Mode = "speakers"
	}

	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.Logging.File = c.String("log-file")
	}
}
