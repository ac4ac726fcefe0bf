package system

import (
	"github.com/milk9111/tailchase/chase"
	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

// LeaderSystem puts every leader head on the cursor.
type LeaderSystem struct{}

func NewLeaderSystem() *LeaderSystem {
	return &LeaderSystem{}
}

func (s *LeaderSystem) Update(w *ecs.World, f *Frame) {
	ecs.ForEach2(w, component.PursuitComponent.Kind(), component.WorldPositionComponent.Kind(), func(e ecs.Entity, p *component.Pursuit, pos *component.WorldPosition) {
		if p.Role != component.RoleLeader || !ecs.Has(w, e, component.HeadTagComponent.Kind()) {
			return
		}
		*pos = chase.Lead(f.Cursor)
	})
}

// FollowSystem moves every follower toward its target head. Head positions
// are read from a snapshot taken before any follower moves, so the result
// does not depend on iteration order.
type FollowSystem struct {
	tuning chase.Tuning
	heads  map[ecs.Entity]component.WorldPosition
}

func NewFollowSystem(tuning chase.Tuning) *FollowSystem {
	return &FollowSystem{
		tuning: tuning.WithDefaults(),
		heads:  make(map[ecs.Entity]component.WorldPosition),
	}
}

func (s *FollowSystem) SetTuning(tuning chase.Tuning) {
	s.tuning = tuning.WithDefaults()
}

func (s *FollowSystem) Tuning() chase.Tuning {
	return s.tuning
}

func (s *FollowSystem) Update(w *ecs.World, f *Frame) {
	clear(s.heads)
	ecs.ForEach2(w, component.HeadTagComponent.Kind(), component.WorldPositionComponent.Kind(), func(e ecs.Entity, _ *component.HeadTag, pos *component.WorldPosition) {
		s.heads[e] = *pos
	})

	ecs.ForEach2(w, component.PursuitComponent.Kind(), component.WorldPositionComponent.Kind(), func(_ ecs.Entity, p *component.Pursuit, pos *component.WorldPosition) {
		if p.Role != component.RoleFollower {
			return
		}
		head, ok := s.heads[ecs.Entity(p.Target)]
		if !ok {
			// target destroyed or never a head
			return
		}
		*pos = chase.Follow(*pos, head, f.DtMillis, s.tuning)
	})
}
