package utils

import (
	"time"

	"github.com/sheikhrachel/go-cavegen/model"
)

// Stats for one generated map
type Stats struct {
	TransitionsPerSecond float64
	Transitions          int
	Walls                int
	Floors               int
	FloorDensity         float64
	Hash                 string
	StartTime            time.Time
	Duration             time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Observe counts a finished transition; pass it to model.WithObserver
func (s *Stats) Observe(model.TransitionEvent) {
	s.Transitions++
}

// Finish records the final grid and the elapsed time
func (s *Stats) Finish(g *model.Grid) {
	s.Duration = time.Since(s.StartTime)
	if s.Duration > 0 {
		s.TransitionsPerSecond = float64(s.Transitions) / s.Duration.Seconds()
	}

	s.Walls = g.CountWalls()
	s.Floors = g.CountFloors()
	if total := g.GetWidth() * g.GetHeight(); total > 0 {
		s.FloorDensity = float64(s.Floors) / float64(total) * 100
	}
	s.Hash = g.GetGridHash()
}
