package main

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/go-motion/motion/pkg/easing"
	"github.com/go-motion/motion/pkg/motion"
	"github.com/go-motion/motion/pkg/profile"
)

// infiniteRunFor bounds playback of animations that repeat forever.
const infiniteRunFor = 3 * time.Second

func runCommand(logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Play one animation and log its frames",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "preset", Value: "fade", Usage: "preset or profile entry name"},
			&cli.StringFlag{Name: "profile", Usage: "optional motion profile file (.yaml or .toml)"},
			&cli.FloatFlag{Name: "from", Value: 0, Usage: "start value"},
			&cli.FloatFlag{Name: "to", Value: 1, Usage: "end value"},
			&cli.FloatFlag{Name: "duration", Usage: "override duration in seconds"},
			&cli.StringFlag{Name: "easing", Usage: "override easing curve name"},
			&cli.IntFlag{Name: "repeat", Usage: "override repeat count (-1 repeats forever)"},
			&cli.BoolFlag{Name: "reverse", Usage: "ping-pong across repeat iterations"},
			&cli.FloatFlag{Name: "delay", Usage: "start delay in seconds"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			owner := motion.NewOwnerKey()
			scheduler := motion.NewScheduler()
			done := make(chan struct{})

			logger.Info("starting animation",
				"preset", cmd.String("preset"),
				"duration", cfg.Duration,
				"easing", cfg.Easing.String(),
				"repeat", cfg.RepeatCount,
				"reverse", cfg.AutoReverse,
			)

			started := time.Now()
			_, err = scheduler.Start(owner, "demo", cmd.Float("from"), cmd.Float("to"), cfg,
				func(v float64) {
					logger.Info("frame", "t", time.Since(started).Round(time.Millisecond), "value", fmt.Sprintf("%.4f", v))
				},
				func() {
					close(done)
				},
			)
			if err != nil {
				return err
			}

			if cfg.RepeatCount == motion.RepeatForever {
				select {
				case <-time.After(infiniteRunFor):
					scheduler.StopOwner(owner)
					logger.Info("stopped infinite animation", "after", infiniteRunFor)
				case <-ctx.Done():
					scheduler.StopAll()
				}
				return nil
			}

			select {
			case <-done:
				logger.Info("animation completed")
			case <-ctx.Done():
				scheduler.StopAll()
			}
			return nil
		},
	}
}

func resolveConfig(cmd *cli.Command) (motion.Config, error) {
	entries := profile.Builtin()
	if path := cmd.String("profile"); path != "" {
		loaded, err := profile.LoadOptional(path)
		if err != nil {
			return motion.Config{}, err
		}
		entries = loaded
	}

	name := cmd.String("preset")
	cfg, ok := entries.Get(name)
	if !ok {
		return motion.Config{}, fmt.Errorf("unknown animation %q", name)
	}

	if s := cmd.Float("duration"); s > 0 {
		cfg.Duration = time.Duration(math.Round(s * float64(time.Second)))
	}
	if curve := cmd.String("easing"); curve != "" {
		kind, err := easing.ParseKind(curve)
		if err != nil {
			return motion.Config{}, err
		}
		cfg.Easing = kind
	}
	if cmd.IsSet("repeat") {
		cfg.RepeatCount = cmd.Int("repeat")
	}
	if cmd.Bool("reverse") {
		cfg.AutoReverse = true
	}
	if s := cmd.Float("delay"); s > 0 {
		cfg.StartDelay = time.Duration(math.Round(s * float64(time.Second)))
	}
	return cfg, nil
}

func presetsCommand(logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List the built-in animation presets",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			entries := profile.Builtin()
			names := make([]string, 0, len(entries))
			for name := range entries {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				cfg := entries[name]
				logger.Info(name,
					"duration", cfg.Duration,
					"easing", cfg.Easing.String(),
				)
			}
			return nil
		},
	}
}
