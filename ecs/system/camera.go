package system

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/milk9111/tailchase/chase"
	"github.com/milk9111/tailchase/common"
	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
)

type recenterAnim struct {
	from  component.WorldPosition
	to    component.WorldPosition
	tween *gween.Tween
}

// CameraSystem pans the camera's logical position with the direction keys
// and eases it back home on request. Held directions cancel a recenter.
type CameraSystem struct {
	tuning   chase.Tuning
	recenter *recenterAnim
	notice   skipNotice
	log      *zap.Logger
}

func NewCameraSystem(tuning chase.Tuning, log *zap.Logger) *CameraSystem {
	log = orNop(log).Named("camera")
	return &CameraSystem{
		tuning: tuning.WithDefaults(),
		notice: skipNotice{log: log},
		log:    log,
	}
}

func (cs *CameraSystem) SetTuning(tuning chase.Tuning) {
	cs.tuning = tuning.WithDefaults()
}

// Recentering reports whether a recenter is in progress.
func (cs *CameraSystem) Recentering() bool {
	return cs.recenter != nil
}

func (cs *CameraSystem) Update(w *ecs.World, f *Frame) {
	cam, n, ok := findCamera(w)
	if !ok {
		cs.recenter = nil
		cs.notice.skip("no unique camera, not panning", zap.Int("cameras", n))
		return
	}
	cs.notice.resume()

	if f.Recenter {
		cs.startRecenter(*cam.position, cam.camera.Home)
	}

	if f.Directions != 0 {
		cs.recenter = nil
		*cam.position = chase.Pan(*cam.position, f.Directions, f.DtMillis, cs.tuning.CameraSpeed)
		return
	}

	if cs.recenter == nil {
		return
	}
	t, done := cs.recenter.tween.Update(float32(f.DtMillis) / 1000)
	*cam.position = component.WorldPosition{
		X: common.LerpInt64(cs.recenter.from.X, cs.recenter.to.X, t),
		Y: common.LerpInt64(cs.recenter.from.Y, cs.recenter.to.Y, t),
	}
	if done {
		*cam.position = cs.recenter.to
		cs.recenter = nil
	}
}

func (cs *CameraSystem) startRecenter(from, to component.WorldPosition) {
	if from == to {
		cs.recenter = nil
		return
	}
	cs.log.Debug("recenter",
		zap.Int64("from_x", from.X), zap.Int64("from_y", from.Y),
		zap.Int64("to_x", to.X), zap.Int64("to_y", to.Y),
	)
	seconds := float32(cs.tuning.RecenterMillis) / 1000
	cs.recenter = &recenterAnim{
		from:  from,
		to:    to,
		tween: gween.New(0, 1, seconds, ease.OutCubic),
	}
}
