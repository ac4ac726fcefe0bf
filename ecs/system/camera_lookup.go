package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

// sceneCamera is the unique camera entity with the components the core
// systems read.
type sceneCamera struct {
	entity    ecs.Entity
	camera    *component.Camera
	transform *component.Transform
	position  *component.WorldPosition
}

// findCamera returns the camera only when exactly one CameraTag entity exists
// and it carries every camera component. The count is the number of tagged
// entities seen.
func findCamera(w *ecs.World) (sceneCamera, int, bool) {
	e, ok := w.Single(component.CameraTagComponent.Kind())
	if !ok {
		return sceneCamera{}, len(w.Query(component.CameraTagComponent.Kind())), false
	}
	cam, okC := ecs.Get(w, e, component.CameraComponent.Kind())
	t, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	p, okP := ecs.Get(w, e, component.WorldPositionComponent.Kind())
	if !okC || !okT || !okP {
		return sceneCamera{}, 1, false
	}
	return sceneCamera{entity: e, camera: cam, transform: t, position: p}, 1, true
}

// skipNotice logs when a system starts and stops skipping frames, instead of
// once per skipped frame.
type skipNotice struct {
	log      *zap.Logger
	skipping bool
}

func (n *skipNotice) skip(msg string, fields ...zap.Field) {
	if n.skipping {
		return
	}
	n.skipping = true
	n.log.Warn(msg, fields...)
}

func (n *skipNotice) resume() {
	if !n.skipping {
		return
	}
	n.skipping = false
	n.log.Info("resumed")
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
