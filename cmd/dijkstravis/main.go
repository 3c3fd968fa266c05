// Command dijkstravis steps an incremental Dijkstra search over a
// noise-weighted grid in the terminal.
//
// Usage:
//
//	dijkstravis [-width 100] [-height 60] [-start-x X] [-start-y Y]
//	            [-end-x X] [-end-y Y] [-scale 13] [-seed N] [-wall T]
//	            [-delay 20ms] [-sound] [-headless]
//
// Keys: space/s step, enter solve, a toggle auto-play, r new noise seed,
// q/esc quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/dijkstravis/gridgraph"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.headless {
		if err = runHeadless(cfg, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err = runUI(cfg); err != nil {
		log.Fatal(err)
	}
}

// runHeadless solves once and prints a summary.
func runHeadless(cfg config, out io.Writer) error {
	gg, err := newGraph(cfg)
	if err != nil {
		return err
	}
	if err = gg.Solve(); err != nil {
		return err
	}
	path, err := gg.FullPath(gg.End())
	if err != nil {
		return err
	}
	d, _ := gg.Distance(gg.End())

	fmt.Fprintf(out, "grid %dx%d seed=%d scale=%g\n", cfg.width, cfg.height, cfg.seed, cfg.scale)
	fmt.Fprintf(out, "start (%d,%d) end (%d,%d)\n", cfg.startX, cfg.startY, cfg.endX, cfg.endY)
	fmt.Fprintf(out, "steps=%d explored=%d path=%d cost=%.4f\n", gg.Steps(), gg.ExploredCount(), len(path), d)

	return nil
}

// runUI owns the screen and the event loop.
func runUI(cfg config) error {
	gg, err := newGraph(cfg)
	if err != nil {
		return err
	}

	var ding *chime
	if cfg.sound {
		if ding, err = newChime(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	// Auto-play ticks arrive as interrupt events so all state changes stay on
	// the event loop goroutine.
	ticker := time.NewTicker(cfg.delay)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			_ = s.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	v := &viewer{cfg: cfg, gg: gg, chime: ding}
	if err = v.redraw(s); err != nil {
		return err
	}

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventInterrupt:
			if !v.auto {
				continue
			}
			v.advance()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyEnter:
				v.finish()
			case ev.Rune() == ' ' || ev.Rune() == 's':
				v.advance()
			case ev.Rune() == 'a':
				v.auto = !v.auto
			case ev.Rune() == 'r':
				if err = v.reseed(); err != nil {
					return err
				}
			}
		}
		if err = v.redraw(s); err != nil {
			return err
		}
	}
}

// viewer is the driver-side state around one graph.
type viewer struct {
	cfg   config
	gg    *gridgraph.GridGraph
	chime *chime
	auto  bool
	err   error
}

// advance performs one step, remembering a terminal error.
func (v *viewer) advance() {
	if v.err != nil || v.gg.IsSolved() {
		v.auto = false
		return
	}
	v.err = v.gg.Step()
	if v.gg.IsSolved() {
		v.chime.play()
	}
}

// finish solves to completion.
func (v *viewer) finish() {
	if v.err != nil || v.gg.IsSolved() {
		return
	}
	v.err = v.gg.Solve()
	if v.gg.IsSolved() {
		v.chime.play()
	}
}

// reseed replaces the graph with one drawn from the next seed.
func (v *viewer) reseed() error {
	v.cfg.seed++
	gg, err := newGraph(v.cfg)
	if err != nil {
		return err
	}
	v.gg, v.err, v.auto = gg, nil, false

	return nil
}

func (v *viewer) status() string {
	switch {
	case v.err != nil:
		return v.err.Error()
	case v.auto:
		return fmt.Sprintf("seed %d %s (auto)", v.cfg.seed, v.gg.State())
	default:
		return fmt.Sprintf("seed %d %s", v.cfg.seed, v.gg.State())
	}
}

func (v *viewer) redraw(s tcell.Screen) error {
	return draw(s, v.gg, v.status())
}
