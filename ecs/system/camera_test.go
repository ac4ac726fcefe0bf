package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/tailchase/chase"
	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

func TestCameraSystemPans(t *testing.T) {
	cases := []struct {
		name string
		dirs chase.Direction
		want component.WorldPosition
	}{
		{"up", chase.DirUp, wp(0, 2000)},
		{"down", chase.DirDown, wp(0, -2000)},
		{"left", chase.DirLeft, wp(-2000, 0)},
		{"right", chase.DirRight, wp(2000, 0)},
		{"up_left", chase.DirUp | chase.DirLeft, wp(-2000, 2000)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			cam := addCamera(t, w, wp(0, 0))

			NewCameraSystem(chase.DefaultTuning(), nil).Update(w, &Frame{DtMillis: 1000, Directions: c.dirs})

			require.Equal(t, c.want, positionOf(t, w, cam))
		})
	}
}

func TestCameraSystemSkipsWithoutUniqueCamera(t *testing.T) {
	w := ecs.NewWorld()
	a := addCamera(t, w, wp(0, 0))
	b := addCamera(t, w, wp(10, 10))

	NewCameraSystem(chase.DefaultTuning(), nil).Update(w, &Frame{DtMillis: 1000, Directions: chase.DirUp})

	require.Equal(t, wp(0, 0), positionOf(t, w, a))
	require.Equal(t, wp(10, 10), positionOf(t, w, b))
}

func TestCameraSystemRecenter(t *testing.T) {
	w := ecs.NewWorld()
	cam := addCamera(t, w, wp(500_000, -250_000))
	c, _ := ecs.Get(w, cam, component.CameraComponent.Kind())
	c.Home = wp(10, 20)

	s := NewCameraSystem(chase.Tuning{RecenterMillis: 100}, nil)
	s.Update(w, &Frame{DtMillis: 16, Recenter: true})
	require.True(t, s.Recentering())

	prev := positionOf(t, w, cam).Sub(c.Home).LengthSquared()
	for i := 0; i < 20 && s.Recentering(); i++ {
		s.Update(w, &Frame{DtMillis: 16})
		d := positionOf(t, w, cam).Sub(c.Home).LengthSquared()
		require.LessOrEqual(t, d, prev)
		prev = d
	}

	require.False(t, s.Recentering())
	require.Equal(t, wp(10, 20), positionOf(t, w, cam))
}

func TestCameraSystemDirectionsCancelRecenter(t *testing.T) {
	w := ecs.NewWorld()
	cam := addCamera(t, w, wp(1000, 0))

	s := NewCameraSystem(chase.DefaultTuning(), nil)
	s.Update(w, &Frame{DtMillis: 16, Recenter: true})
	require.True(t, s.Recentering())
	before := positionOf(t, w, cam)

	s.Update(w, &Frame{DtMillis: 1000, Directions: chase.DirRight})

	require.False(t, s.Recentering())
	require.Equal(t, before.Add(wp(2000, 0)), positionOf(t, w, cam))
}

func TestCameraSystemRecenterAtHomeIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	addCamera(t, w, wp(0, 0))

	s := NewCameraSystem(chase.DefaultTuning(), nil)
	s.Update(w, &Frame{DtMillis: 16, Recenter: true})

	require.False(t, s.Recentering())
}
