// Command bezierplot renders one Bézier editing session to an image file.
//
// Usage:
//
//	bezierplot [-config session.toml] [-out curve.png] [-steps n] [-computer cache|jit] [-dump] [-v]
//
// The session (control points, steps, computer and drawing switches) is read
// from the TOML file; -steps and -computer override it. -dump prints the
// curve samples as tab-separated x/y pairs on stdout. An empty -out skips
// rendering.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/bezier/editor"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "bezierplot:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bezierplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML session description")
	out := fs.String("out", "bezier.png", "output image; the extension picks the format")
	steps := fs.Int("steps", editor.MinSteps, "sampling intervals (overrides the config)")
	computer := fs.String("computer", "cache", "coefficient computer, cache or jit (overrides the config)")
	dump := fs.Bool("dump", false, "print curve samples to stdout")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
		log.Debug("loaded config", "path", *configPath, "control_points", len(cfg.ControlPoints))
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "steps":
			cfg.Steps = *steps
		case "computer":
			cfg.Computer = *computer
		}
	})

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	style, err := cfg.Style()
	if err != nil {
		return err
	}
	s, err := editor.NewSession(cfg.Points(), opts)
	if err != nil {
		return err
	}
	log.Debug("session ready", "degree", s.Degree(), "steps", s.Steps(), "computer", s.Kind())

	if *dump {
		for _, p := range s.Points() {
			fmt.Fprintf(stdout, "%g\t%g\n", p.X, p.Y)
		}
	}

	if *out == "" {
		return nil
	}
	if err = Render(s, style, *out); err != nil {
		return err
	}
	log.Info("rendered", "path", *out, "samples", len(s.Points()))

	return nil
}
