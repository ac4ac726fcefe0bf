package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/tailchase/common"
	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

// RenderSyncSystem derives each entity's Transform from its WorldPosition
// relative to the camera. It runs after every system that moves positions.
type RenderSyncSystem struct {
	notice skipNotice
}

func NewRenderSyncSystem(log *zap.Logger) *RenderSyncSystem {
	return &RenderSyncSystem{notice: skipNotice{log: orNop(log).Named("render_sync")}}
}

func (s *RenderSyncSystem) Update(w *ecs.World, _ *Frame) {
	cam, n, ok := findCamera(w)
	if !ok {
		s.notice.skip("no unique camera, transforms left stale", zap.Int("cameras", n))
		return
	}
	s.notice.resume()

	ecs.ForEach2(w, component.WorldPositionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pos *component.WorldPosition, t *component.Transform) {
		if e == cam.entity || ecs.Has(w, e, component.ParentComponent.Kind()) {
			return
		}
		*t = pos.ToRenderSpace(*t, *cam.transform, *cam.position, common.WorldScale)
	})
}
