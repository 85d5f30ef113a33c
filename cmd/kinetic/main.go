package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/entity"
	"github.com/oomph-ac/kinetic/settings"
	"github.com/oomph-ac/kinetic/shape"
	"github.com/oomph-ac/kinetic/sim"
	"github.com/oomph-ac/kinetic/trace"
	"github.com/oomph-ac/kinetic/worker"
	"github.com/oomph-ac/kinetic/world"
	kblock "github.com/oomph-ac/kinetic/world/block"
)

// The following program builds a small world, fills it with entities and simulates it for a number of
// ticks, optionally writing every tick to a movement trace.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ./kinetic <settings_path> [ticks]")
		return
	}
	ticks := 200
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n <= 0 {
			fmt.Printf("invalid tick count %q\n", os.Args[2])
			return
		}
		ticks = n
	}

	conf, err := loadSettings(os.Args[1])
	if err != nil {
		panic(err)
	}
	level := slog.LevelInfo
	if conf.Simulation.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	w, err := newWorld(conf, log)
	if err != nil {
		panic(err)
	}
	opts, err := conf.SimulationOptions()
	if err != nil {
		panic(err)
	}
	if conf.Simulation.Debug {
		opts.Debugf = func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		}
	}
	s := sim.New(w, opts, log)

	if conf.Trace.Enabled {
		tw, err := trace.Create(conf.Trace.Path)
		if err != nil {
			panic(err)
		}
		defer func() {
			if err := tw.Close(); err != nil {
				log.Error("unable to close trace", "err", err)
			}
		}()
		s.Recorder = tw
	}

	player, err := populate(w)
	if err != nil {
		panic(err)
	}

	pool := worker.NewPool(conf.Workers.Count)
	defer pool.Close()

	start := time.Now()
	for i := 0; i < ticks; i++ {
		if i == ticks/2 {
			knockbackZombies(s, w, player)
		}
		pool.TickAll(w.Entities(), func(e *entity.Entity) {
			res := s.Tick(e)
			if res.Move.Damage > 0 {
				log.Info("fall damage", "id", e.ID(), "kind", e.Kind(), "damage", res.Move.Damage, "sound", res.Move.Sound)
			}
			if res.Exploded {
				log.Info("tnt exploded", "id", e.ID(), "pos", e.Position())
			}
			if res.Merged > 0 {
				log.Info("items merged", "id", e.ID(), "count", res.Merged)
			}
		})
	}
	log.Info("simulation finished", "ticks", ticks, "entities", w.EntityCount(), "took", time.Since(start))
	for _, e := range w.Entities() {
		snap := e.Snapshot()
		past, _ := e.Rewind(snap.Ticks - 10)
		log.Info("entity", "id", snap.ID, "kind", snap.Kind, "pos", snap.Position, "pos_10_ticks_ago", past.Position, "on_ground", snap.OnGround, "health", snap.Health)
	}
}

// loadSettings loads the settings file at path, creating it with the defaults if it does not exist.
func loadSettings(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}

func newWorld(conf settings.Settings, log *slog.Logger) (*world.World, error) {
	dim, ok := world.DimensionByName(conf.World.Dimension)
	if !ok {
		return nil, fmt.Errorf("unknown dimension %q", conf.World.Dimension)
	}
	shapes := shape.Default()
	if conf.World.ShapeTable != "" {
		var err error
		if shapes, err = shape.Load(conf.World.ShapeTable); err != nil {
			return nil, err
		}
	}
	return world.New(world.Config{Seed: conf.World.Seed, Dimension: dim, Shapes: shapes, Log: log}), nil
}

// populate builds a stone platform with a few obstacles on it and spawns one entity of every kind. The
// player is returned.
func populate(w *world.World) (*entity.Entity, error) {
	const floor = 4
	w.Fill(cube.Pos{-8, floor, -8}, cube.Pos{8, floor, 8}, block.Stone{})
	w.Fill(cube.Pos{8, floor + 1, -8}, cube.Pos{8, floor + 2, 8}, block.Stone{})
	w.SetBlock(cube.Pos{2, floor + 1, 2}, kblock.Cobweb{}, nil)
	w.SetBlock(cube.Pos{-3, floor + 1, 0}, kblock.Slab("minecraft:stone_slab"), nil)
	w.Fill(cube.Pos{-6, floor + 1, -6}, cube.Pos{-5, floor + 1, -5}, block.Water{Still: true, Depth: 8})
	w.SetBlock(cube.Pos{0, floor, 6}, kblock.Fixture{Name: "minecraft:packed_ice", Boxes: []cube.BBox{cube.Box(0, 0, 0, 1, 1, 1)}, Slipperiness: 0.98}, nil)

	top := float64(floor + 1)
	player, err := w.Spawn(entity.Config{Kind: entity.KindPlayer, Position: mgl64.Vec3{7.5, top, 0.5}, Velocity: mgl64.Vec3{0, 0, 0.3}, OnGround: true})
	if err != nil {
		return nil, err
	}
	player.SetSneaking(true)

	spawns := []entity.Config{
		{Kind: entity.KindZombie, Position: mgl64.Vec3{0.5, top + 8, -2.5}},
		{Kind: entity.KindZombie, Position: mgl64.Vec3{2.5, top, 2.5}, Velocity: mgl64.Vec3{0.2, 0, 0.2}},
		{Kind: entity.KindZombie, Position: mgl64.Vec3{-5.5, top + 6, -5.5}},
		{Kind: entity.KindItem, Position: mgl64.Vec3{0.5, top + 1, 6.5}, Velocity: mgl64.Vec3{0.1, 0, 0}, Item: entity.ItemStack{Name: "minecraft:diamond", Count: 3}},
		{Kind: entity.KindItem, Position: mgl64.Vec3{-3.5, top + 2, 0.5}, Item: entity.ItemStack{Name: "minecraft:stone", Count: 16}},
		{Kind: entity.KindItem, Position: mgl64.Vec3{-3.4, top + 2, 0.6}, Item: entity.ItemStack{Name: "minecraft:stone", Count: 16}},
	}
	for _, conf := range spawns {
		if _, err := w.Spawn(conf); err != nil {
			return nil, err
		}
	}

	tnt, err := w.Spawn(entity.Config{Kind: entity.KindTNT, Position: mgl64.Vec3{4.5, top, -4.5}})
	if err != nil {
		return nil, err
	}
	tnt.Prime()
	return player, nil
}

// knockbackZombies knocks every zombie in the world away from the player.
func knockbackZombies(s *sim.Simulator, w *world.World, player *entity.Entity) {
	from := player.Position()
	for _, e := range w.Entities() {
		if e.Kind() != entity.KindZombie {
			continue
		}
		pos := e.Position()
		s.ApplyKnockback(e, 0.4, from[0]-pos[0], from[2]-pos[2])
	}
}
