package system

import "github.com/milk9111/tailchase/ecs"

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *ecs.World, f *Frame) {
	if w == nil || f == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w, f)
	}
}
