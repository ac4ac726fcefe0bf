package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
	"github.com/milk9111/tailchase/prefabs"
)

const defaultSpriteSize = 50

var defaultSpriteColor = color.White

// Chain is a spawned pursuit chain. Leader is the invisible head that tracks
// the cursor; Links are ordered from the leader outward.
type Chain struct {
	Leader ecs.Entity
	Links  []ecs.Entity
}

// NewChain spawns the leader at the origin and one link per spec entry, each
// chasing the one before it. points, when given, overrides the links' At.
func NewChain(w *ecs.World, spec prefabs.ChainSpec, points []prefabs.PointSpec) (Chain, error) {
	leader := ecs.CreateEntity(w)
	if err := ecs.Add(w, leader, component.WorldPositionComponent.Kind(), &component.WorldPosition{}); err != nil {
		return Chain{}, fmt.Errorf("chain: leader: add world position: %w", err)
	}
	if err := ecs.Add(w, leader, component.HeadTagComponent.Kind(), &component.HeadTag{}); err != nil {
		return Chain{}, fmt.Errorf("chain: leader: add head tag: %w", err)
	}
	if err := ecs.Add(w, leader, component.PursuitComponent.Kind(), component.Leader()); err != nil {
		return Chain{}, fmt.Errorf("chain: leader: add pursuit: %w", err)
	}

	chain := Chain{Leader: leader, Links: make([]ecs.Entity, 0, len(spec.Links))}
	prev := leader
	for i, link := range spec.Links {
		var at prefabs.PointSpec
		switch {
		case i < len(points):
			at = points[i]
		case link.At != nil:
			at = *link.At
		}

		e := ecs.CreateEntity(w)
		if err := addBody(w, e, at, link.Sprite); err != nil {
			return Chain{}, fmt.Errorf("chain: link %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.PursuitComponent.Kind(), component.Following(uint64(prev))); err != nil {
			return Chain{}, fmt.Errorf("chain: link %d: add pursuit: %w", i, err)
		}
		if link.Head {
			if err := ecs.Add(w, e, component.HeadTagComponent.Kind(), &component.HeadTag{}); err != nil {
				return Chain{}, fmt.Errorf("chain: link %d: add head tag: %w", i, err)
			}
		}

		chain.Links = append(chain.Links, e)
		prev = e
	}
	return chain, nil
}
