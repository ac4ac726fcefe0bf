package component

// Transform is the render-space placement of an entity. Z is depth: higher
// values draw on top.
type Transform struct {
	X float64
	Y float64
	Z float64
}

var TransformComponent = NewComponent[Transform]()
