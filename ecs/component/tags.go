package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// HeadTag marks an entity other entities may chase.
type HeadTag struct{}

var HeadTagComponent = NewComponent[HeadTag]()
