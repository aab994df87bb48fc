package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// PatternConfig places a named pattern at a position on the grid
type PatternConfig struct {
	Name string `json:"name"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// Config holds the configuration for the game
type Config struct {
	Width               uint32          `json:"width"`
	Height              uint32          `json:"height"`
	FrameRate           time.Duration   `json:"frame_rate"`
	AutoRestart         bool            `json:"auto_restart"`
	StagnationThreshold int             `json:"stagnation_threshold"`
	RestartEvery        int             `json:"restart_every"`
	MaxGenerations      int             `json:"max_generations"`
	RandomDensity       float64         `json:"random_density"`
	RandomSeed          int64           `json:"random_seed"`
	InjectionCount      int             `json:"injection_count"`
	SeedFile            string          `json:"seed_file"`
	UseDefaultPattern   bool            `json:"use_default_pattern"`
	Patterns            []PatternConfig `json:"patterns"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              32,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		RestartEvery:        200,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		RandomSeed:          1,
		InjectionCount:      3,
		Patterns: []PatternConfig{
			{Name: "glider", Row: 5, Col: 5},
			{Name: "blinker", Row: 8, Col: 16},
		},
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a universe cannot be built from
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return errors.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.FrameRate < 0 {
		return errors.New("frame_rate must not be negative")
	}
	// zero disables the threshold, the periodic restart and the limit
	counts := []struct {
		name  string
		value int
	}{
		{"stagnation_threshold", c.StagnationThreshold},
		{"restart_every", c.RestartEvery},
		{"max_generations", c.MaxGenerations},
		{"injection_count", c.InjectionCount},
	}
	for _, n := range counts {
		if n.value < 0 {
			return errors.Errorf("%s must not be negative, got %d", n.name, n.value)
		}
	}
	return nil
}
