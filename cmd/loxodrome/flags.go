package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/loxodrome/internal/config"
	"github.com/san-kum/loxodrome/internal/export"
	"github.com/san-kum/loxodrome/internal/scene"
)

// applyOutputFlags lets explicit flags win over the config file.
func applyOutputFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Output.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Output.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("fps") {
		cfg.Output.FPS, _ = flags.GetInt("fps")
	}
	if cfg.Output.Width <= 0 || cfg.Output.Height <= 0 || cfg.Output.FPS <= 0 {
		return fmt.Errorf("width, height and fps must be positive")
	}
	return nil
}

// ribbonFilter selects one ribbon, or every ribbon for -1.
func ribbonFilter(ribbon, n int) (func(int) bool, error) {
	switch {
	case ribbon == -1:
		return nil, nil
	case ribbon < -1 || ribbon >= n:
		return nil, fmt.Errorf("ribbon %d out of range [0, %d) (-1 = all)", ribbon, n)
	}
	return func(i int) bool { return i == ribbon }, nil
}

func writeSamples(w io.Writer, s *scene.Scene, format string, filter func(int) bool) error {
	switch format {
	case "csv":
		return export.WriteCSV(w, s, filter)
	case "json":
		return export.WriteJSON(w, s, filter)
	default:
		return fmt.Errorf("unknown format: %s (available: csv, json)", format)
	}
}

// writeSamplesFile writes samples to path and reports the close error too.
func writeSamplesFile(path string, s *scene.Scene, format string, filter func(int) bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := writeSamples(f, s, format, filter); err != nil {
		return err
	}
	return f.Close()
}
