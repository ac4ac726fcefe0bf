package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

func screenFrame(px, py float64, ok bool) *Frame {
	return &Frame{
		DtMillis: 16,
		Pointer:  Pointer{X: px, Y: py, OK: ok},
		Screen:   cp.Vector{X: 800, Y: 600},
	}
}

func TestCursorSystemConvertsPointer(t *testing.T) {
	cases := []struct {
		name   string
		camera component.WorldPosition
		px, py float64
		want   component.WorldPosition
	}{
		{"centre_at_origin", wp(0, 0), 400, 300, wp(0, 0)},
		{"up_right_of_centre", wp(0, 0), 405, 295, wp(50, 50)},
		{"camera_offset", wp(1_000_000, -7), 400, 310, wp(1_000_000, -107)},
		{"far_camera", wp(1<<61, 1<<61), 401, 299, wp(1<<61+10, 1<<61+10)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addCamera(t, w, c.camera)
			f := screenFrame(c.px, c.py, true)

			NewCursorSystem(nil).Update(w, f)

			require.Equal(t, c.want, f.Cursor)
		})
	}
}

func TestCursorSystemKeepsLastKnownPosition(t *testing.T) {
	w := ecs.NewWorld()
	addCamera(t, w, wp(0, 0))
	s := NewCursorSystem(nil)

	f := screenFrame(410, 300, true)
	s.Update(w, f)
	require.Equal(t, wp(100, 0), f.Cursor)

	f.Pointer = Pointer{X: 500, Y: 100, OK: false}
	s.Update(w, f)
	require.Equal(t, wp(100, 0), f.Cursor, "unavailable pointer must not move the cursor")

	f.Pointer = Pointer{X: 900, Y: 100, OK: true}
	s.Update(w, f)
	require.Equal(t, wp(100, 0), f.Cursor, "pointer outside the viewport must not move the cursor")
}

func TestCursorSystemRespectsViewport(t *testing.T) {
	w := ecs.NewWorld()
	cam := addCamera(t, w, wp(0, 0))
	c, _ := ecs.Get(w, cam, component.CameraComponent.Kind())
	c.Viewport = cp.BB{L: 400, B: 0, R: 800, T: 300}

	f := screenFrame(100, 100, true)
	f.Cursor = wp(-1, -1)
	s := NewCursorSystem(nil)
	s.Update(w, f)
	require.Equal(t, wp(-1, -1), f.Cursor)

	f.Pointer = Pointer{X: 600, Y: 150, OK: true}
	s.Update(w, f)
	require.Equal(t, wp(0, 0), f.Cursor)
}

func TestCursorSystemSkipsWithoutUniqueCamera(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		w := ecs.NewWorld()
		f := screenFrame(0, 0, true)
		f.Cursor = wp(3, 4)
		NewCursorSystem(nil).Update(w, f)
		require.Equal(t, wp(3, 4), f.Cursor)
	})

	t.Run("two", func(t *testing.T) {
		w := ecs.NewWorld()
		addCamera(t, w, wp(0, 0))
		addCamera(t, w, wp(100, 100))
		f := screenFrame(0, 0, true)
		f.Cursor = wp(3, 4)
		NewCursorSystem(nil).Update(w, f)
		require.Equal(t, wp(3, 4), f.Cursor)
	})
}
