package chase

import "github.com/milk9111/tailchase/ecs/component"

// Lead is the leader rule: the leader sits exactly on the cursor.
func Lead(cursor component.WorldPosition) component.WorldPosition {
	return cursor
}

// Follow is the follow rule. Inside the slack radius the follower stays put;
// outside it moves by speed*delta*dt/1000, so it closes a fixed share of the
// gap per second. Large speed*dt overshoots the head and oscillates; that is
// left as is.
func Follow(self, head component.WorldPosition, dtMillis int64, t Tuning) component.WorldPosition {
	delta := head.Sub(self)
	if delta.WithinRadius(t.Slack) {
		return self
	}
	return self.Add(component.WorldPosition{
		X: t.CatchUpSpeed * delta.X * dtMillis / 1000,
		Y: t.CatchUpSpeed * delta.Y * dtMillis / 1000,
	})
}

// Direction is a set of held movement keys.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) Has(o Direction) bool {
	return d&o != 0
}

// Pan moves the camera by speed*dt/1000 for each held direction. Directions
// add up independently, so diagonals are faster than straight moves.
func Pan(pos component.WorldPosition, dirs Direction, dtMillis, speed int64) component.WorldPosition {
	step := speed * dtMillis / 1000
	if dirs.Has(DirUp) {
		pos.Y += step
	}
	if dirs.Has(DirDown) {
		pos.Y -= step
	}
	if dirs.Has(DirRight) {
		pos.X += step
	}
	if dirs.Has(DirLeft) {
		pos.X -= step
	}
	return pos
}
