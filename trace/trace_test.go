package trace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/entity"
	"github.com/oomph-ac/kinetic/sim"
	"github.com/oomph-ac/kinetic/world"
)

func TestRecordAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "ticks.jsonl.zst")
	w, err := Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	wld := world.New(world.Config{Dimension: world.Flat})
	wld.Fill(cube.Pos{-1, 0, -1}, cube.Pos{1, 0, 1}, block.Stone{})
	s := sim.New(wld, sim.SimulationOptions{}, nil)
	s.Recorder = w

	e, err := wld.Spawn(entity.Config{Kind: entity.KindZombie, Position: mgl64.Vec3{0.5, 3, 0.5}})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	for range 20 {
		s.Tick(e)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Record(sim.TickResult{}); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected recording after close to fail, got %v", err)
	}

	entries, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 20 {
		t.Fatalf("expected 20 entries, got %v", len(entries))
	}
	for i, entry := range entries {
		if entry.Tick != int64(i) || entry.Kind != "zombie" || entry.ID != uint64(e.ID()) {
			t.Fatalf("unexpected entry %v: %+v", i, entry)
		}
	}
	last := entries[len(entries)-1]
	if !last.OnGround || last.Position != e.Position() {
		t.Fatalf("expected the zombie to have landed at %v, got %+v", e.Position(), last)
	}
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Read(filepath.Join(dir, "missing.zst")); err == nil {
		t.Fatal("expected an error for a missing trace")
	}

	path := filepath.Join(dir, "plain.jsonl.zst")
	if err := os.WriteFile(path, []byte("{\"tick\": 1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Fatal("expected an error for an uncompressed trace")
	}
}
