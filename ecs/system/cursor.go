package system

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/tailchase/common"
	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

// CursorSystem converts the pointer into a logical world position. It must
// run before anything reads Frame.Cursor.
type CursorSystem struct {
	notice skipNotice
}

func NewCursorSystem(log *zap.Logger) *CursorSystem {
	return &CursorSystem{notice: skipNotice{log: orNop(log).Named("cursor")}}
}

func (s *CursorSystem) Update(w *ecs.World, f *Frame) {
	cam, n, ok := findCamera(w)
	if !ok {
		s.notice.skip("no unique camera, cursor not tracked", zap.Int("cameras", n))
		return
	}
	s.notice.resume()

	if !f.Pointer.OK {
		return
	}

	vp := cam.camera.ViewportRect(f.Screen.X, f.Screen.Y)
	render, inside := component.ViewportToRender(*cam.transform, vp, cp.Vector{X: f.Pointer.X, Y: f.Pointer.Y})
	if !inside {
		return
	}

	f.Cursor = component.FromRenderSpace(render.X, render.Y, *cam.position, common.WorldScale)
}
