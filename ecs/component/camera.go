package component

import "github.com/jakecoffman/cp"

// Camera describes where on screen the camera draws. Viewport is in screen
// pixels (L/R are the min/max x, B/T the min/max y, y growing downward). A
// zero Viewport means the whole screen. Home is the logical position the
// camera eases back to when recentered.
type Camera struct {
	Viewport cp.BB
	Home     WorldPosition
}

var CameraComponent = NewComponent[Camera]()

// ViewportRect resolves the camera viewport against the current screen size.
func (c Camera) ViewportRect(screenW, screenH float64) cp.BB {
	if c.Viewport == (cp.BB{}) {
		return cp.BB{L: 0, B: 0, R: screenW, T: screenH}
	}
	return c.Viewport
}

// ViewportToRender turns a screen pixel inside vp into a render-space point.
// Render space is y-up and the viewport centre shows the camera transform.
// It reports false when the pixel lies outside the viewport.
func ViewportToRender(camera Transform, vp cp.BB, screen cp.Vector) (cp.Vector, bool) {
	if !vp.ContainsVect(screen) {
		return cp.Vector{}, false
	}
	c := vp.Center()
	return cp.Vector{
		X: camera.X + (screen.X - c.X),
		Y: camera.Y + (c.Y - screen.Y),
	}, true
}

// RenderToViewport is the inverse of ViewportToRender, used for drawing.
func RenderToViewport(camera Transform, vp cp.BB, render cp.Vector) cp.Vector {
	c := vp.Center()
	return cp.Vector{
		X: c.X + (render.X - camera.X),
		Y: c.Y - (render.Y - camera.Y),
	}
}
