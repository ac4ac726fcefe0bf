package system

import (
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

// RenderSystem draws sprites at their Transform through the camera viewport.
// It only reads Transforms; RenderSyncSystem keeps them current.
type RenderSystem struct {
	order []ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	cam, _, ok := findCamera(w)
	if !ok {
		return
	}

	b := screen.Bounds()
	vp := cam.camera.ViewportRect(float64(b.Dx()), float64(b.Dy()))
	target, ok := screen.SubImage(image.Rect(int(vp.L), int(vp.B), int(vp.R), int(vp.T))).(*ebiten.Image)
	if !ok {
		return
	}

	r.order = append(r.order[:0], w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())...)
	depth := func(e ecs.Entity) float64 {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			return t.Z
		}
		return 0
	}
	sort.SliceStable(r.order, func(i, j int) bool {
		zi, zj := depth(r.order[i]), depth(r.order[j])
		if zi != zj {
			return zi < zj
		}
		return uint64(r.order[i]) < uint64(r.order[j])
	})

	for _, e := range r.order {
		if e == cam.entity {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if t == nil || s == nil || s.Color == nil {
			continue
		}

		p := component.RenderToViewport(*cam.transform, vp, cp.Vector{X: t.X, Y: t.Y})
		vector.DrawFilledRect(
			target,
			float32(p.X-s.Width/2),
			float32(p.Y-s.Height/2),
			float32(s.Width),
			float32(s.Height),
			s.Color,
			false,
		)
	}
}
