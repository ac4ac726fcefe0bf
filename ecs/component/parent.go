package component

// Parent attaches an entity's Transform to another entity's Transform. Such
// entities are positioned by their parent, not by their own WorldPosition.
type Parent struct {
	Entity uint64 // ecs.Entity
}

var ParentComponent = NewComponent[Parent]()
