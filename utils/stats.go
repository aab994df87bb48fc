package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	Population           int
	PeakPopulation       int
	AveragePopulation    float64 // mean over the frames since the last restart
	TotalGenerations     int
	Restarts             int
	LastRestart          int // generation of the last restart
	StartTime            time.Time

	frames int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame: the generation reached, its population and how
// long the frame took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	s.frames++
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(s.frames)
}

// Restart opens a new window at generation: the population mean and peak
// start over
func (s *Stats) Restart(generation int) {
	s.Restarts++
	s.LastRestart = generation
	s.PeakPopulation = 0
	s.AveragePopulation = 0
	s.frames = 0
}

// SinceRestart returns the generations elapsed in the current window
func (s *Stats) SinceRestart() int {
	return s.TotalGenerations - s.LastRestart
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
