package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

func addCamera(t *testing.T, w *ecs.World, at component.WorldPosition) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	require.NoError(t, ecs.Add(w, e, component.WorldPositionComponent.Kind(), &at))
	return e
}

func addBody(t *testing.T, w *ecs.World, at component.WorldPosition, z float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.WorldPositionComponent.Kind(), &at))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Z: z}))
	return e
}

func addLeader(t *testing.T, w *ecs.World, at component.WorldPosition) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.WorldPositionComponent.Kind(), &at))
	require.NoError(t, ecs.Add(w, e, component.HeadTagComponent.Kind(), &component.HeadTag{}))
	require.NoError(t, ecs.Add(w, e, component.PursuitComponent.Kind(), component.Leader()))
	return e
}

func addTail(t *testing.T, w *ecs.World, target ecs.Entity, at component.WorldPosition, head bool) ecs.Entity {
	t.Helper()
	e := addBody(t, w, at, 1)
	require.NoError(t, ecs.Add(w, e, component.PursuitComponent.Kind(), component.Following(uint64(target))))
	if head {
		require.NoError(t, ecs.Add(w, e, component.HeadTagComponent.Kind(), &component.HeadTag{}))
	}
	return e
}

func positionOf(t *testing.T, w *ecs.World, e ecs.Entity) component.WorldPosition {
	t.Helper()
	p, ok := ecs.Get(w, e, component.WorldPositionComponent.Kind())
	require.True(t, ok, "entity %v has no WorldPosition", e)
	return *p
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok, "entity %v has no Transform", e)
	return *tr
}

func wp(x, y int64) component.WorldPosition {
	return component.WorldPosition{X: x, Y: y}
}
