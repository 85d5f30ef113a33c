package sim

import (
	"log/slog"

	"github.com/oomph-ac/kinetic/entity"
)

// SimulationOptions define simulator behavior.
type SimulationOptions struct {
	// DisableFallDamage stops landing from dealing damage. Fall distance is still tracked and reset.
	DisableFallDamage bool
	// Gravity overrides the gravity of entity kinds. Kinds missing from the map use their default.
	Gravity map[entity.Kind]float64

	// Debugf receives internal simulation trace logs for callers that need deep diagnostics.
	Debugf func(format string, args ...any)
}

// Simulator moves entities through a world. A Simulator holds no per-entity state and may be used by
// many goroutines at once; ticks of a single entity are serialised by the entity itself.
type Simulator struct {
	World   WorldProvider
	Options SimulationOptions
	// Log receives warnings about entities that could not be simulated. slog.Default() is used if nil.
	Log *slog.Logger
	// Recorder, if set, receives the result of every tick.
	Recorder Recorder
}

// New returns a simulator moving entities through the world passed.
func New(w WorldProvider, opts SimulationOptions, log *slog.Logger) *Simulator {
	if log == nil {
		log = slog.Default()
	}
	return &Simulator{World: w, Options: opts, Log: log}
}

// Gravity returns the downward acceleration applied to entities of the kind passed each tick.
func (s *Simulator) Gravity(k entity.Kind) float64 {
	if g, ok := s.Options.Gravity[k]; ok {
		return g
	}
	return k.Gravity()
}

func (s *Simulator) debugf(format string, args ...any) {
	if s.Options.Debugf != nil {
		s.Options.Debugf(format, args...)
	}
}

func (s *Simulator) log() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}
