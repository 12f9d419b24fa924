// Command motion-demo plays animation engine trajectories from the terminal,
// logging every delivered frame. It exists to exercise the engine end to end:
// scheduler, easing curves, presets, and profile files.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "motion-demo",
	})

	app := &cli.Command{
		Name:  "motion-demo",
		Usage: "Play animation trajectories and log each frame",
		Commands: []*cli.Command{
			runCommand(logger),
			presetsCommand(logger),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("demo failed", "err", err)
	}
}
