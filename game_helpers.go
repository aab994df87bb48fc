package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-universe/model"
	"github.com/sheikhrachel/go-gol-universe/utils"
)

// frame is one rendered generation, snapshotted between ticks
type frame struct {
	status string
	grid   string
}

// game owns the universe and the bookkeeping around it. Only the simulation
// goroutine touches it.
type game struct {
	config   utils.Config
	seed     *utils.Seed
	rng      *rand.Rand
	universe *model.Universe
	history  model.History
	stats    *utils.Stats

	generation    int
	stagnantCount int
	notice        string // shown once in the next frame
}

// newGame sets up the initial game state
func newGame(config utils.Config) (*game, error) {
	g := &game{
		config: config,
		rng:    rand.New(rand.NewSource(config.RandomSeed)),
		stats:  utils.NewStats(),
	}

	if config.SeedFile != "" {
		seed, err := utils.LoadSeed(config.SeedFile)
		if err != nil {
			return nil, errors.Wrap(err, "[newGame] failed to load seed")
		}
		g.seed = &seed
	}

	if err := g.populate(); err != nil {
		return nil, err
	}
	return g, nil
}

// populate replaces the universe with a freshly seeded one
func (g *game) populate() error {
	g.history.Reset()
	g.stagnantCount = 0

	switch {
	case g.seed != nil:
		g.universe = g.seed.Universe()
		return nil
	case g.config.UseDefaultPattern:
		g.universe = model.Default()
		return nil
	}

	u := model.Blank(g.config.Width, g.config.Height)
	for _, p := range g.config.Patterns {
		coords, ok := u.PatternCoords(p.Name, p.Row, p.Col)
		if !ok {
			return errors.Errorf("[populate] unknown pattern %q", p.Name)
		}
		u.SetCells(coords...)
	}
	u.SetCells(u.RandomCoords(g.rng, g.config.RandomDensity)...)
	g.universe = u
	return nil
}

// injectRandomLife adds some random cells to break stagnation
func (g *game) injectRandomLife(count int) {
	if count <= 0 {
		return
	}
	coords := make([]model.Coord, count)
	for i := range coords {
		coords[i] = g.universe.Wrap(g.rng.Intn(int(g.universe.Height())), g.rng.Intn(int(g.universe.Width())))
	}
	g.universe.SetCells(coords...)
}

// snapshot records the current generation and renders it
func (g *game) snapshot(frameDuration time.Duration) frame {
	population := g.universe.Population()
	density := float64(population) / float64(g.universe.Len()) * 100
	g.stats.Update(g.generation, population, frameDuration)

	stagnant := g.history.Observe(g.universe)
	if stagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	status := "Active"
	switch {
	case population == 0:
		status = "Extinct"
	case stagnant:
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}

	text := fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, population, density, status)
	text += fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation, g.stats.Runtime().Seconds())
	if since := g.stats.SinceRestart(); since > 0 {
		text += fmt.Sprintf("Generations since restart: %d | Restarts: %d\n", since, g.stats.Restarts)
	}
	if g.notice != "" {
		text += g.notice + "\n"
		g.notice = ""
	}
	if g.done() {
		text += fmt.Sprintf("Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
	}

	return frame{status: text, grid: g.universe.String()}
}

// checkRestartConditions determines if the game should restart
func (g *game) checkRestartConditions() (bool, string) {
	if g.universe.Population() == 0 {
		return true, "extinction"
	}
	if g.config.StagnationThreshold > 0 && g.stagnantCount >= g.config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if g.config.RestartEvery > 0 && g.stats.SinceRestart() > 0 &&
		g.stats.SinceRestart()%g.config.RestartEvery == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// intervene restarts the universe when a restart condition holds, or injects
// random life while it is stagnant but below the restart threshold. It
// returns the restart reason, if any.
func (g *game) intervene() (string, error) {
	restart, reason := g.checkRestartConditions()
	if restart && g.config.AutoRestart {
		if err := g.populate(); err != nil {
			return "", err
		}
		g.stats.Restart(g.generation)
		g.notice = fmt.Sprintf("Restarted due to %s", reason)
		return reason, nil
	}

	if g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold {
		g.injectRandomLife(g.config.InjectionCount)
	}
	return "", nil
}

// advance intervenes when needed, then ticks the universe
func (g *game) advance() (string, error) {
	reason, err := g.intervene()
	if err != nil {
		return "", err
	}

	g.universe.Tick()
	g.generation++
	return reason, nil
}

// done reports whether the generation limit has been reached
func (g *game) done() bool {
	return g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
}
