package chase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/tailchase/ecs/component"
)

func pos(x, y int64) component.WorldPosition {
	return component.WorldPosition{X: x, Y: y}
}

func TestLeadSnapsToCursor(t *testing.T) {
	for _, cursor := range []component.WorldPosition{pos(0, 0), pos(-5, 7), pos(1<<62, -(1 << 62))} {
		require.Equal(t, cursor, Lead(cursor))
	}
}

func TestFollowDeadZone(t *testing.T) {
	tuning := DefaultTuning()
	cases := []struct {
		name       string
		self, head component.WorldPosition
	}{
		{"same_spot", pos(0, 0), pos(0, 0)},
		{"just_inside_x", pos(0, 0), pos(9, 0)},
		{"diagonal_inside", pos(100, 100), pos(107, 107)},
		{"negative_inside", pos(-3, -3), pos(-9, -9)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Less(t, c.head.Sub(c.self).LengthSquared(), tuning.Slack*tuning.Slack)
			require.Equal(t, c.self, Follow(c.self, c.head, 1000, tuning))
		})
	}
}

func TestFollowMovesWhenHeadIsFarAway(t *testing.T) {
	tuning := DefaultTuning()
	cases := []struct {
		name       string
		self, head component.WorldPosition
		want       component.WorldPosition
	}{
		{"far_x", pos(0, 0), pos(3_100_000_000, 0), pos(496_000_000, 0)},
		{"far_negative_y", pos(0, 0), pos(0, -3_100_000_000), pos(0, -496_000_000)},
		{"far_both", pos(5, 5), pos(10_000_000_005, -9_999_999_995), pos(1_600_000_005, -1_599_999_995)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Follow(c.self, c.head, 16, tuning))
		})
	}
}

func TestFollowOvershootsAtLargeStep(t *testing.T) {
	got := Follow(pos(0, 0), pos(10000, 0), 1000, DefaultTuning())

	require.Equal(t, pos(100000, 0), got)
	require.Equal(t, int64(90000), got.X-10000)
}

func TestFollowStrictlyApproachesWhenStepBelowOne(t *testing.T) {
	tuning := DefaultTuning()
	head := pos(2500, -1200)

	for _, dt := range []int64{16, 33, 50, 99} {
		require.Less(t, tuning.CatchUpSpeed*dt, int64(1000))
		for _, self := range []component.WorldPosition{
			pos(0, 0), pos(2490, -1200), pos(2508, -1194), pos(-100000, 40000), pos(2500, 5000),
		} {
			before := head.Sub(self).LengthSquared()
			require.GreaterOrEqual(t, before, tuning.Slack*tuning.Slack)

			next := Follow(self, head, dt, tuning)
			require.Less(t, head.Sub(next).LengthSquared(), before, "dt=%d self=%v", dt, self)
		}
	}
}

func TestFollowConvergesWithFixedHead(t *testing.T) {
	tuning := DefaultTuning()
	head := pos(-73000, 12000)
	self := pos(10000, 10000)

	prev := head.Sub(self).LengthSquared()
	for i := 0; i < 1000; i++ {
		self = Follow(self, head, 16, tuning)
		d := head.Sub(self).LengthSquared()
		require.LessOrEqual(t, d, prev, "frame %d", i)
		prev = d
	}
	require.Less(t, prev, tuning.Slack*tuning.Slack)
}

func TestPan(t *testing.T) {
	cases := []struct {
		name string
		dirs Direction
		want component.WorldPosition
	}{
		{"idle", 0, pos(0, 0)},
		{"up", DirUp, pos(0, 32)},
		{"down", DirDown, pos(0, -32)},
		{"left", DirLeft, pos(-32, 0)},
		{"right", DirRight, pos(32, 0)},
		{"diagonal_not_normalized", DirUp | DirRight, pos(32, 32)},
		{"opposites_cancel", DirLeft | DirRight, pos(0, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Pan(pos(0, 0), c.dirs, 16, DefaultCameraSpeed))
		})
	}
}

func TestTuningWithDefaults(t *testing.T) {
	require.Equal(t, DefaultTuning(), Tuning{}.WithDefaults())

	custom := Tuning{CatchUpSpeed: 3, Slack: 50}.WithDefaults()
	require.Equal(t, int64(3), custom.CatchUpSpeed)
	require.Equal(t, int64(50), custom.Slack)
	require.Equal(t, int64(DefaultCameraSpeed), custom.CameraSpeed)
}
