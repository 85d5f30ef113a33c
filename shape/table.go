// Package shape holds block collision geometry loaded from data files. Entries in a table take
// precedence over the geometry reported by a block's model.
package shape

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/collision"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTable []byte

// Box is a block-local box as written in a shape file.
type Box struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

// Entry is the collision geometry of one block.
type Entry struct {
	// Solid is nil when unset, in which case the block is solid if it has boxes.
	Solid *bool `yaml:"solid,omitempty"`
	Boxes []Box `yaml:"boxes,omitempty"`
}

// File is the layout of a shape file.
type File struct {
	Blocks map[string]Entry `yaml:"blocks"`
}

// Table maps block names to collision states. It is safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	states map[string]collision.BlockState
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{states: make(map[string]collision.BlockState)}
}

// Default returns a table holding the built-in shapes.
func Default() *Table {
	t := NewTable()
	if err := t.Merge(defaultTable); err != nil {
		panic(fmt.Errorf("built-in shape table: %w", err))
	}
	return t
}

// Load reads a shape file from path and merges it into a table holding the built-in shapes.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shape table: %w", err)
	}
	t := Default()
	if err := t.Merge(data); err != nil {
		return nil, err
	}
	return t, nil
}

// Merge decodes YAML shape data and adds its entries to the table, replacing entries with the same
// block name.
func (t *Table) Merge(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal shape table: %w", err)
	}

	states := make(map[string]collision.BlockState, len(f.Blocks))
	for name, entry := range f.Blocks {
		state, err := entry.state()
		if err != nil {
			return fmt.Errorf("block %s: %w", name, err)
		}
		states[name] = state
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for name, state := range states {
		t.states[name] = state
	}
	return nil
}

func (e Entry) state() (collision.BlockState, error) {
	boxes := make([]collision.BBox, 0, len(e.Boxes))
	for _, b := range e.Boxes {
		bb, err := collision.NewBBox(mgl64.Vec3(b.Min), mgl64.Vec3(b.Max))
		if err != nil {
			return collision.BlockState{}, err
		}
		boxes = append(boxes, bb)
	}
	solid := len(boxes) > 0
	if e.Solid != nil {
		solid = *e.Solid
	}
	if !solid {
		boxes = nil
	}
	return collision.BlockState{Solid: solid, Boxes: boxes}, nil
}

// Lookup returns the state registered for the block name passed.
func (t *Table) Lookup(name string) (collision.BlockState, bool) {
	if t == nil {
		return collision.BlockState{}, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.states[name]
	return s, ok
}

// Len returns the amount of blocks in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.states)
}
