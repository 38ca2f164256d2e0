package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/TheBitDrifter/kinematics"
	"github.com/TheBitDrifter/kinematics/scenario"
)

func main() {
	path := flag.String("scenario", "", "path to a scenario YAML file")
	ticks := flag.Int("ticks", -1, "override the scenario tick count")
	verbose := flag.Bool("v", false, "log every tick")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := kinematics.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: kinematics -scenario file.yaml [-ticks n] [-v]")
		os.Exit(2)
	}

	s, err := scenario.Load(*path)
	if err != nil {
		logger.Error("load failed", "err", err)
		os.Exit(1)
	}
	n := s.Ticks
	if *ticks >= 0 {
		n = *ticks
	}

	world, err := s.Build(kinematics.WithLogger(logger))
	if err != nil {
		logger.Error("build failed", "err", err)
		os.Exit(1)
	}
	logger.Info("running", "scenario", *path, "dt", s.Step(), "ticks", n, "bodies", len(s.Entities))

	if err := scenario.Run(world, n); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}

	for _, p := range scenario.Placements(world) {
		fmt.Printf("%s %g %g\n", p.Name, p.Position.X, p.Position.Y)
	}
}
