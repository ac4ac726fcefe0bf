package entity

import (
	"context"
	"fmt"

	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/prefabs"
)

type Scene struct {
	Camera    ecs.Entity
	Landmarks []ecs.Entity
	Chain     Chain
}

// BuildScene spawns the camera, the landmarks and the chain described by spec.
func BuildScene(ctx context.Context, w *ecs.World, spec *prefabs.SceneSpec) (Scene, error) {
	if w == nil || spec == nil {
		return Scene{}, fmt.Errorf("scene: nil world or spec")
	}

	var scene Scene
	var err error
	if scene.Camera, err = NewCamera(w, spec.Camera); err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}

	for _, l := range spec.Landmarks {
		e, err := NewLandmark(w, l)
		if err != nil {
			return Scene{}, fmt.Errorf("scene: %w", err)
		}
		scene.Landmarks = append(scene.Landmarks, e)
	}

	var points []prefabs.PointSpec
	if spec.Chain.LayoutScript != "" {
		points, err = prefabs.RunLayout(ctx, spec.Chain.LayoutScript, len(spec.Chain.Links), spec.Chain.Spacing)
		if err != nil {
			return Scene{}, fmt.Errorf("scene: %w", err)
		}
	}
	if scene.Chain, err = NewChain(w, spec.Chain, points); err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	return scene, nil
}
