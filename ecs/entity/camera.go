package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
	"github.com/milk9111/tailchase/prefabs"
)

// NewCamera spawns the scene camera. The render transform stays at the origin;
// only the logical position moves.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	start := component.WorldPosition{X: spec.Start.X, Y: spec.Start.Y}
	if err := ecs.Add(w, camera, component.WorldPositionComponent.Kind(), &start); err != nil {
		return 0, fmt.Errorf("camera: add world position: %w", err)
	}

	home := start
	if spec.Home != nil {
		home = component.WorldPosition{X: spec.Home.X, Y: spec.Home.Y}
	}
	var viewport cp.BB
	if r := spec.Viewport; r != nil && r.Width > 0 && r.Height > 0 {
		viewport = cp.NewBBForExtents(cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}, r.Width/2, r.Height/2)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Viewport: viewport,
		Home:     home,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
