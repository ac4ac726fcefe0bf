package component

import "image/color"

// Sprite is a solid square drawn centred on the Transform, sized in render
// units.
type Sprite struct {
	Color  color.Color
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()
