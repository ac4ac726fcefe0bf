package chase

const (
	DefaultCatchUpSpeed   = 10   // per second, fraction of the remaining distance
	DefaultSlack          = 10   // logical units
	DefaultCameraSpeed    = 2000 // logical units per second
	DefaultRecenterMillis = 600
)

// Tuning holds the chase and camera constants. All values are logical world
// units or milliseconds.
type Tuning struct {
	CatchUpSpeed   int64
	Slack          int64
	CameraSpeed    int64
	RecenterMillis int64
}

func DefaultTuning() Tuning {
	return Tuning{
		CatchUpSpeed:   DefaultCatchUpSpeed,
		Slack:          DefaultSlack,
		CameraSpeed:    DefaultCameraSpeed,
		RecenterMillis: DefaultRecenterMillis,
	}
}

// WithDefaults fills zero fields from DefaultTuning. Negative values are kept
// as given.
func (t Tuning) WithDefaults() Tuning {
	d := DefaultTuning()
	if t.CatchUpSpeed == 0 {
		t.CatchUpSpeed = d.CatchUpSpeed
	}
	if t.Slack == 0 {
		t.Slack = d.Slack
	}
	if t.CameraSpeed == 0 {
		t.CameraSpeed = d.CameraSpeed
	}
	if t.RecenterMillis == 0 {
		t.RecenterMillis = d.RecenterMillis
	}
	return t
}
