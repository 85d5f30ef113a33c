package sim

import (
	"github.com/oomph-ac/kinetic/entity"
)

// Tick runs one tick of e: kind-specific state, the cobweb check, fluid or gravity, movement by the
// velocity of the entity, friction and finally post-movement behaviour such as item merging. Ticks of
// the same entity are serialised; entities that have been removed are not ticked.
func (s *Simulator) Tick(e *entity.Entity) TickResult {
	e.LockTick()
	defer e.UnlockTick()

	res := TickResult{ID: e.ID(), Kind: e.Kind()}
	if e.Removed() {
		res.Outcome = OutcomeRemoved
		return res
	}
	tick := e.IncrementTicks()
	res.Tick = tick

	b := BehaviourOf(e.Kind())
	if b.PreTick(s, e, &res) {
		s.remove(e)
		res.Outcome = OutcomeRemoved
		s.record(res)
		return res
	}

	res.Stuck = s.checkInsideBlocks(e)
	if b.ShouldMove(e, tick) {
		s.ApplyFluidOrGravity(e)
		res.Move = s.Move(e, e.Velocity())
		if res.Move.Outcome == OutcomeNonFinite {
			res.Outcome = OutcomeNonFinite
			s.record(res)
			return res
		}
		b.ApplyFriction(s, e)
	} else {
		res.Outcome = OutcomeIdle
	}

	b.PostTick(s, e, tick, &res)
	e.Record(tick)
	s.record(res)
	return res
}

func (s *Simulator) remove(e *entity.Entity) {
	if s.World != nil && s.World.RemoveEntity(e.ID()) {
		return
	}
	e.MarkRemoved()
}

func (s *Simulator) record(res TickResult) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.Record(res); err != nil {
		s.log().Error("unable to record tick", "id", res.ID, "tick", res.Tick, "err", err)
	}
}
