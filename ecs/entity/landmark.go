package entity

import (
	"fmt"

	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
	"github.com/milk9111/tailchase/prefabs"
)

// NewLandmark spawns a fixed square. Landmarks carry no Pursuit, so nothing
// moves them.
func NewLandmark(w *ecs.World, spec prefabs.LandmarkSpec) (ecs.Entity, error) {
	landmark := ecs.CreateEntity(w)
	if err := addBody(w, landmark, spec.At, spec.Sprite); err != nil {
		return 0, fmt.Errorf("landmark %q: %w", spec.Name, err)
	}
	return landmark, nil
}

// addBody gives e a logical position and a sprite drawn at the sprite depth.
func addBody(w *ecs.World, e ecs.Entity, at prefabs.PointSpec, sprite prefabs.SpriteSpec) error {
	if err := ecs.Add(w, e, component.WorldPositionComponent.Kind(), &component.WorldPosition{X: at.X, Y: at.Y}); err != nil {
		return fmt.Errorf("add world position: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Z: sprite.Depth}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}

	size := sprite.Size
	if size <= 0 {
		size = defaultSpriteSize
	}
	s := &component.Sprite{Width: size, Height: size, Color: defaultSpriteColor}
	if sprite.Color != nil && sprite.Color.Color != nil {
		s.Color = sprite.Color.Color
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), s); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	return nil
}
