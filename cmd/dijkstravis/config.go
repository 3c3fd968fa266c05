package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"time"
)

// Defaults match the original visualiser menu.
const (
	defaultWidth  = 100
	defaultHeight = 60
	defaultScale  = 13
)

var errConfig = errors.New("dijkstravis: invalid configuration")

// config is everything the driver needs to build and step a graph.
type config struct {
	width, height int
	startX        int
	startY        int
	endX, endY    int
	scale         float64
	seed          int64
	wall          float64
	delay         time.Duration
	sound         bool
	headless      bool
}

// parseConfig reads flags from args (without the program name).
func parseConfig(args []string, out io.Writer) (config, error) {
	cfg := config{}
	fs := flag.NewFlagSet("dijkstravis", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.IntVar(&cfg.width, "width", defaultWidth, "grid width in cells")
	fs.IntVar(&cfg.height, "height", defaultHeight, "grid height in cells")
	fs.IntVar(&cfg.startX, "start-x", -1, "start column (default width/2)")
	fs.IntVar(&cfg.startY, "start-y", -1, "start row (default height/2)")
	fs.IntVar(&cfg.endX, "end-x", -1, "end column (default 3*width/4)")
	fs.IntVar(&cfg.endY, "end-y", -1, "end row (default height/2)")
	fs.Float64Var(&cfg.scale, "scale", defaultScale, "noise scale, larger is smoother")
	fs.Int64Var(&cfg.seed, "seed", 0, "noise seed (0 = fixed default)")
	fs.Float64Var(&cfg.wall, "wall", 0, "treat cells with stretch >= wall as impassable (0 disables)")
	fs.DurationVar(&cfg.delay, "delay", 20*time.Millisecond, "auto-play step interval")
	fs.BoolVar(&cfg.sound, "sound", false, "play a chime when the path is found")
	fs.BoolVar(&cfg.headless, "headless", false, "solve without a terminal UI and print a summary")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	// Unset coordinates fall back to the original layout: start in the
	// centre, end three quarters across.
	if cfg.startX < 0 {
		cfg.startX = round(float64(cfg.width) / 2)
	}
	if cfg.startY < 0 {
		cfg.startY = round(float64(cfg.height) / 2)
	}
	if cfg.endX < 0 {
		cfg.endX = round(float64(cfg.width) * 3 / 4)
	}
	if cfg.endY < 0 {
		cfg.endY = round(float64(cfg.height) / 2)
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.width <= 0 || c.height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", errConfig, c.width, c.height)
	}
	if c.scale <= 0 {
		return fmt.Errorf("%w: scale %v", errConfig, c.scale)
	}
	if c.delay <= 0 {
		return fmt.Errorf("%w: delay %v", errConfig, c.delay)
	}
	if c.wall < 0 {
		return fmt.Errorf("%w: wall %v", errConfig, c.wall)
	}

	return nil
}

// round rounds half to even, as the original menu computed its defaults.
func round(v float64) int { return int(math.RoundToEven(v)) }
