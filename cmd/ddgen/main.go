package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
	"github.com/wetware/ddgen/cmd/ddgen/generate"
)

// level stays at Info so that a successful run prints nothing.
var level = new(slog.LevelVar)

func main() {
	ctx := context.Background()

	err := newApp().RunContext(ctx, os.Args)
	if err != nil {
		slog.ErrorContext(ctx, err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "ddgen",
		Usage:     "write a binary fixture of little-endian address words",
		Copyright: "2020 The Wetware Project",
		Before:    setup,
		Action:    generate.Main,
		Commands: []*cli.Command{
			generate.Command(),
		},
	}
}

func setup(c *cli.Context) error {
	slog.SetDefault(slog.New(tint.NewHandler(c.App.ErrWriter, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	return nil
}
