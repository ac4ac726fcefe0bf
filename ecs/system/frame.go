package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tailchase/chase"
	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

// Pointer is the mouse position in screen pixels. OK is false when the host
// has no usable pointer this frame (window unfocused, cursor off screen).
type Pointer struct {
	X  float64
	Y  float64
	OK bool
}

// Frame is everything a system may read from the host for one frame, plus
// the cursor state carried from frame to frame. The orchestrator owns it and
// passes the same value to every system in order.
type Frame struct {
	DtMillis   int64
	Pointer    Pointer
	Directions chase.Direction
	// Recenter asks the camera to ease back to its home position.
	Recenter bool
	// Screen is the logical screen size in pixels.
	Screen cp.Vector

	// Cursor is the last logical world position of the pointer. It starts at
	// the origin and keeps its value while the pointer is unavailable.
	Cursor component.WorldPosition
}

// System updates a world each frame.
type System interface {
	Update(w *ecs.World, f *Frame)
}
