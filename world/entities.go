package world

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	"github.com/oomph-ac/kinetic/assert"
	"github.com/oomph-ac/kinetic/collision"
	"github.com/oomph-ac/kinetic/entity"
	"github.com/oomph-ac/kinetic/game"
	"github.com/oomph-ac/kinetic/oerror"
	"github.com/sasha-s/go-deadlock"
)

type slot struct {
	generation uint32
	e          *entity.Entity
}

// entityIndex is an arena of entity slots. Released slots are reused with a bumped generation.
type entityIndex struct {
	mu     deadlock.RWMutex
	slots  []slot
	free   []uint32
	byUUID *orderedmap.OrderedMap[uuid.UUID, entity.ID]
}

func newEntityIndex() *entityIndex {
	return &entityIndex{byUUID: orderedmap.NewOrderedMap[uuid.UUID, entity.ID]()}
}

// Spawn creates an entity from the config passed and adds it to the world. The world seed is mixed
// into the seed of the config.
func (w *World) Spawn(conf entity.Config) (*entity.Entity, error) {
	if !game.Vec3Finite(conf.Position) || !game.Vec3Finite(conf.Velocity) {
		return nil, oerror.Wrap(oerror.ErrNonFinite, "spawn %v at %v with velocity %v", conf.Kind, conf.Position, conf.Velocity)
	}
	if conf.UUID == uuid.Nil {
		conf.UUID = uuid.New()
	}
	conf.Seed ^= w.seed

	idx := w.entities
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if existing, ok := idx.byUUID.Get(conf.UUID); ok {
		return nil, oerror.New("entity %v already exists as %v", conf.UUID, existing)
	}

	var i uint32
	if n := len(idx.free); n > 0 {
		i = idx.free[n-1]
		idx.free = idx.free[:n-1]
	} else {
		i = uint32(len(idx.slots))
		idx.slots = append(idx.slots, slot{})
	}
	s := &idx.slots[i]
	assert.IsTrue(s.e == nil, "slot %d handed out while still occupied", i)

	e := entity.New(entity.NewID(i, s.generation), conf)
	s.e = e
	idx.byUUID.Set(conf.UUID, e.ID())

	w.log.Debug("spawned entity", "id", e.ID(), "kind", conf.Kind, "pos", conf.Position)
	return e, nil
}

// Entity returns the entity with the ID passed. An error wrapping oerror.ErrStaleEntity is returned
// if the entity was removed.
func (w *World) Entity(id entity.ID) (*entity.Entity, error) {
	idx := w.entities
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if e := idx.lookup(id); e != nil {
		return e, nil
	}
	return nil, oerror.Wrap(oerror.ErrStaleEntity, "entity %v", id)
}

// EntityByUUID returns the entity with the UUID passed, if it is in the world.
func (w *World) EntityByUUID(id uuid.UUID) (*entity.Entity, bool) {
	idx := w.entities
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	eid, ok := idx.byUUID.Get(id)
	if !ok {
		return nil, false
	}
	e := idx.lookup(eid)
	return e, e != nil
}

// RemoveEntity removes the entity with the ID passed from the world. The entity is marked as removed
// and its slot is released. It returns false if the ID was already stale.
func (w *World) RemoveEntity(id entity.ID) bool {
	idx := w.entities
	idx.mu.Lock()
	defer idx.mu.Unlock()

	e := idx.lookup(id)
	if e == nil {
		return false
	}
	s := &idx.slots[id.Index()]
	s.e = nil
	s.generation++
	idx.free = append(idx.free, id.Index())
	idx.byUUID.Delete(e.UUID())

	e.MarkRemoved()
	w.log.Debug("removed entity", "id", id, "kind", e.Kind())
	return true
}

// Entities returns every entity in the world, in the order they were spawned.
func (w *World) Entities() []*entity.Entity {
	idx := w.entities
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entities := make([]*entity.Entity, 0, idx.byUUID.Len())
	for _, id := range idx.byUUID.Keys() {
		eid, _ := idx.byUUID.Get(id)
		if e := idx.lookup(eid); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

// EntityCount returns the amount of entities in the world.
func (w *World) EntityCount() int {
	idx := w.entities
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.byUUID.Len()
}

// EntitiesInBox returns the ID and bounding box of every entity whose box intersects the box passed.
// The boxes are read one entity at a time, so they may be stale relative to entities that are moving
// concurrently.
func (w *World) EntitiesInBox(box collision.BBox) []collision.Obstacle {
	var obstacles []collision.Obstacle
	for _, e := range w.Entities() {
		if bb := e.BBox(); bb.Intersects(box) {
			obstacles = append(obstacles, collision.Obstacle{ID: uint64(e.ID()), Box: bb})
		}
	}
	return obstacles
}

// ItemsNear returns the item entities within radius blocks of the box passed, excluding the entity
// with the ID self.
func (w *World) ItemsNear(self entity.ID, box collision.BBox, radius float64) []*entity.Entity {
	area := box.Grow(radius, radius, radius)
	var items []*entity.Entity
	for _, e := range w.Entities() {
		if e.ID() == self || e.Kind() != entity.KindItem {
			continue
		}
		if e.BBox().Intersects(area) {
			items = append(items, e)
		}
	}
	return items
}

func (idx *entityIndex) lookup(id entity.ID) *entity.Entity {
	i := id.Index()
	if int(i) >= len(idx.slots) {
		return nil
	}
	s := idx.slots[i]
	if s.generation != id.Generation() || s.e == nil {
		return nil
	}
	return s.e
}
