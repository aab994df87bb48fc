package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-universe/model"
	"github.com/sheikhrachel/go-gol-universe/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration")
	seedPath := flag.String("seed", "", "path to a JSON seed pattern, overrides seed_file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	if *seedPath != "" {
		config.SeedFile = *seedPath
	}

	g, err := newGame(config)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		g.universe.Width(), g.universe.Height(), g.universe.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	time.Sleep(2 * time.Second)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = run(ctx, g, model.NewTerminalRenderer())
	fmt.Printf("\nFinal stats: %d generations in %.1f seconds, %d restarts\n",
		g.generation, g.stats.Runtime().Seconds(), g.stats.Restarts)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
	if err != nil {
		log.Fatal(err)
	}
}

// run drives the game until ctx is cancelled or the generation limit is hit.
// The simulation goroutine is the only one touching the universe; it hands
// finished frames to the render goroutine.
func run(ctx context.Context, g *game, renderer *model.TerminalRenderer) error {
	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames    = make(chan frame, 1)
	)

	eg.Go(func() error {
		defer close(frames)
		lastFrameTime := time.Now()
		for {
			if egCtx.Err() != nil {
				return nil
			}

			frameStart := time.Now()
			f := g.snapshot(frameStart.Sub(lastFrameTime))
			lastFrameTime = frameStart

			select {
			case frames <- f:
			case <-egCtx.Done():
				return nil
			}

			if g.done() {
				return nil
			}

			if _, err := g.advance(); err != nil {
				return err
			}

			select {
			case <-time.After(g.config.FrameRate):
			case <-egCtx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		for f := range frames {
			if err := renderer.Clear(); err != nil {
				return errors.Wrap(err, "[run] failed to clear terminal")
			}
			if err := renderer.Display(f.status + "\n" + f.grid); err != nil {
				return errors.Wrap(err, "[run] failed to draw frame")
			}
		}
		return nil
	})

	return eg.Wait()
}
