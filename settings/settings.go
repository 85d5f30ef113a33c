package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/kinetic/entity"
	"github.com/oomph-ac/kinetic/sim"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for the simulation.
type Settings struct {
	World struct {
		// Seed is mixed into the random source of every entity.
		Seed int64
		// Dimension is either "overworld" or "flat".
		Dimension string
		// ShapeTable is an optional YAML file with block shape overrides.
		ShapeTable string
	}
	Simulation struct {
		DisableFallDamage bool
		// Gravity overrides the gravity of entity kinds, keyed by kind name.
		Gravity map[string]float64
		// Debug logs every decision of the simulator.
		Debug bool
	}
	Workers struct {
		// Count is the amount of goroutines ticking entities. Zero uses one per CPU.
		Count int
	}
	Trace struct {
		Enabled bool
		// Path is the zstd compressed file ticks are written to.
		Path string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.World.Dimension = "overworld"
	s.Simulation.Gravity = map[string]float64{}
	s.Trace.Path = "trace.jsonl.zst"
	return s
}

// SimulationOptions converts the simulation settings to options for a sim.Simulator. Gravity keys that
// do not name an entity kind are reported as an error.
func (s Settings) SimulationOptions() (sim.SimulationOptions, error) {
	opts := sim.SimulationOptions{DisableFallDamage: s.Simulation.DisableFallDamage}
	if len(s.Simulation.Gravity) == 0 {
		return opts, nil
	}
	opts.Gravity = make(map[entity.Kind]float64, len(s.Simulation.Gravity))
	for name, g := range s.Simulation.Gravity {
		k, ok := entity.KindByName(name)
		if !ok {
			return sim.SimulationOptions{}, fmt.Errorf("unknown entity kind %q in gravity settings", name)
		}
		opts.Gravity[k] = g
	}
	return opts, nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	s := DefaultSettings()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if _, err := s.SimulationOptions(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
