package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running jeebie-regs", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "jeebie-regs"
	app.Description = "Inspect and manipulate the Game Boy CPU register file"
	app.Usage = "jeebie-regs [options] <command>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		pairCommand,
		splitCommand,
		flagsCommand,
		dumpCommand,
		inspectCommand,
	}

	return app
}

func setupLogging(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}
