package component

type PursuitRole int

const (
	// RoleLeader snaps to the cursor every frame.
	RoleLeader PursuitRole = iota + 1
	// RoleFollower chases the head stored in Target.
	RoleFollower
)

// Pursuit decides how an entity's WorldPosition is driven. Entities without
// it are never moved by the chase.
type Pursuit struct {
	Role PursuitRole
	// Target is the chased entity (ecs.Entity is uint64). It does not own the
	// target; once the target is destroyed the follower stops moving.
	Target uint64
}

var PursuitComponent = NewComponent[Pursuit]()

func Leader() *Pursuit {
	return &Pursuit{Role: RoleLeader}
}

func Following(target uint64) *Pursuit {
	return &Pursuit{Role: RoleFollower, Target: target}
}
