// Subplot builds a figure from a CSV table and a figure description and
// writes it as JSON document, HTML page or image.
//
// Usage:
//
//	subplot --config fig.yaml [--data table.csv] [-o fig.png] [--show]
//
// The output format is selected by the extension of the output file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/vdobler/subplot/render"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	flags := pflag.NewFlagSet("subplot", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.StringP("config", "c", "", "figure description (.yaml, .yml, .json or .jsonc)")
	dataPath := flags.StringP("data", "d", "", "CSV table, overrides the data file of the config")
	output := flags.StringP("output", "o", "", "output file; the extension selects the format (default figure.html)")
	width := flags.Int("width", 0, "image width in pixels")
	height := flags.Int("height", 0, "image height in pixels")
	scale := flags.Float64("scale", 1, "resolution factor of raster images")
	show := flags.Bool("show", false, "open the figure in the web browser")
	verbose := flags.BoolP("verbose", "v", false, "log debug messages")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flags.Arg(0))
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *configPath == "" {
		return errors.New("--config is required")
	}
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dataPath != "" {
		cfg.Data = *dataPath
	}
	logger.Debug("loaded config", "path", *configPath, "data", cfg.Data, "plots", len(cfg.Plots))

	t, err := cfg.ReadData()
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	logger.Debug("read data", "rows", t.Len(), "columns", len(t.Columns()))

	fig, err := cfg.Figure(t)
	if err != nil {
		return err
	}
	logger.Debug("built figure", "panels", len(fig.Panels), "traces", len(fig.Traces))

	if *show {
		name, err := render.Show(fig)
		if err != nil {
			return err
		}
		logger.Info("opened figure", "file", name)
		if *output == "" {
			return nil
		}
	}

	if *output == "" {
		*output = "figure.html"
	}
	opts := render.ImageOptions{Width: *width, Height: *height, Scale: *scale}
	if err := render.WriteFile(*output, fig, opts); err != nil {
		return err
	}
	logger.Info("wrote figure", "file", *output)
	return nil
}
