package component

// WorldPosition is an entity's exact location in the logical world. It is the
// only authoritative position; Transform is derived from it every frame.
type WorldPosition struct {
	X int64
	Y int64
}

var WorldPositionComponent = NewComponent[WorldPosition]()

func (p WorldPosition) Add(o WorldPosition) WorldPosition {
	return WorldPosition{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p WorldPosition) Sub(o WorldPosition) WorldPosition {
	return WorldPosition{X: p.X - o.X, Y: p.Y - o.Y}
}

// LengthSquared wraps on overflow like any int64 product. Use WithinRadius
// for distance checks.
func (p WorldPosition) LengthSquared() int64 {
	return p.X*p.X + p.Y*p.Y
}

// WithinRadius reports whether p is strictly shorter than r. Each axis is
// compared against r first, so only offsets smaller than r are squared.
func (p WorldPosition) WithinRadius(r int64) bool {
	if r < 0 {
		r = -r
	}
	if p.X >= r || p.X <= -r || p.Y >= r || p.Y <= -r {
		return false
	}
	return p.LengthSquared() < r*r
}

// ToRenderSpace places p relative to the camera. The offset from the camera
// is taken in int64 before it is converted, so positions far beyond float
// precision still land exactly where they should near the camera. own.Z is
// kept as the entity's depth.
func (p WorldPosition) ToRenderSpace(own, camera Transform, cameraPos WorldPosition, scale int64) Transform {
	rel := p.Sub(cameraPos)
	s := float64(scale)
	own.X = camera.X + float64(rel.X)/s
	own.Y = camera.Y + float64(rel.Y)/s
	return own
}

// FromRenderSpace maps a render-space point back to the logical world. The
// render coordinates are truncated toward zero before scaling, so the round
// trip through ToRenderSpace loses less than scale logical units per axis.
func FromRenderSpace(x, y float64, cameraPos WorldPosition, scale int64) WorldPosition {
	return cameraPos.Add(WorldPosition{
		X: int64(x) * scale,
		Y: int64(y) * scale,
	})
}
