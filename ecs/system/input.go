package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tailchase/chase"
)

// SampleInput fills the host-provided parts of f from ebiten. It must be
// called from inside ebiten's Update.
func SampleInput(f *Frame) {
	if f == nil {
		return
	}

	x, y := ebiten.CursorPosition()
	f.Pointer = Pointer{
		X:  float64(x),
		Y:  float64(y),
		OK: ebiten.IsFocused(),
	}

	var dirs chase.Direction
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dirs |= chase.DirUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dirs |= chase.DirDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dirs |= chase.DirLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dirs |= chase.DirRight
	}
	f.Directions = dirs

	f.Recenter = f.Recenter || inpututil.IsKeyJustPressed(ebiten.KeyHome)
}
