package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// WorldScale is the number of logical world units per render unit.
	WorldScale int64 = 10
)
