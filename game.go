package main

import (
	"context"
	"fmt"
	"image/color"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/milk9111/tailchase/common"
	"github.com/milk9111/tailchase/ecs"
	"github.com/milk9111/tailchase/ecs/component"
	"github.com/milk9111/tailchase/ecs/entity"
	"github.com/milk9111/tailchase/ecs/system"
	"github.com/milk9111/tailchase/prefabs"
)

var background = color.NRGBA{R: 0x9a, G: 0xa4, B: 0xb0, A: 0xff}

type GameOptions struct {
	Scene string
	Debug bool
	Log   *zap.Logger
	// Reloads delivers names of changed prefab files. Nil disables reloading.
	Reloads <-chan string
	// Clipboard is false when clipboard.Init failed.
	Clipboard bool
}

type Game struct {
	world     *ecs.World
	scene     entity.Scene
	scheduler *system.Scheduler
	follow    *system.FollowSystem
	camera    *system.CameraSystem
	render    *system.RenderSystem

	// frame carries the cursor from one update to the next.
	frame system.Frame
	last  time.Time

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	debug     bool
	clipboard bool
	reloads   <-chan string
	log       *zap.Logger
}

func NewGame(ctx context.Context, opts GameOptions) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	sceneFile := opts.Scene
	if sceneFile == "" {
		sceneFile = prefabs.SceneFile
	}
	spec, err := prefabs.LoadSpec[prefabs.SceneSpec](sceneFile)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	w := ecs.NewWorld()
	scene, err := entity.BuildScene(ctx, w, &spec)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		world:     w,
		scene:     scene,
		follow:    system.NewFollowSystem(tuning),
		camera:    system.NewCameraSystem(tuning, log),
		render:    system.NewRenderSystem(),
		debug:     opts.Debug,
		clipboard: opts.Clipboard,
		reloads:   opts.Reloads,
		log:       log,
	}
	// Cursor first so the leader sees this frame's pointer; render sync last so
	// transforms reflect every move.
	g.scheduler = system.NewScheduler()
	g.scheduler.Add(system.NewCursorSystem(log))
	g.scheduler.Add(system.NewLeaderSystem())
	g.scheduler.Add(g.follow)
	g.scheduler.Add(g.camera)
	g.scheduler.Add(system.NewRenderSyncSystem(log))
	g.frame.Screen = cp.Vector{X: common.BaseWidth, Y: common.BaseHeight}

	log.Info("scene ready",
		zap.String("scene", sceneFile),
		zap.Int("links", len(scene.Chain.Links)),
		zap.Int("landmarks", len(scene.Landmarks)),
	)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}

	now := time.Now()
	if g.last.IsZero() || g.paused {
		g.last = now
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	dt := now.Sub(g.last).Milliseconds()
	// Only whole milliseconds are consumed; the remainder carries over.
	g.last = g.last.Add(time.Duration(dt) * time.Millisecond)

	system.SampleInput(&g.frame)
	g.step(dt)

	if g.clipboard && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		text := cursorText(g.frame.Cursor)
		clipboard.Write(clipboard.FmtText, []byte(text))
		g.log.Info("copied cursor", zap.String("position", text))
	}
	return nil
}

// step runs one frame of the systems with the input already in g.frame.
func (g *Game) step(dtMillis int64) {
	g.frame.DtMillis = dtMillis
	g.scheduler.Update(g.world, &g.frame)
	g.frame.Recenter = false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) setPaused(paused bool) {
	if paused && g.pauseUI == nil {
		g.pauseUI = NewPauseUI(g)
	}
	g.paused = paused
}

// recenter asks the camera to ease home on the next unpaused frame.
func (g *Game) recenter() {
	g.frame.Recenter = true
}

func (g *Game) applyReloads() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.reload(name)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if filepath.Base(name) != prefabs.TuningFile {
		g.log.Info("change applies on restart", zap.String("file", name))
		return
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		g.log.Warn("keeping previous tuning", zap.Error(err))
		return
	}
	g.follow.SetTuning(tuning)
	g.camera.SetTuning(tuning)
	g.log.Info("tuning reloaded",
		zap.Int64("catch_up_speed", tuning.CatchUpSpeed),
		zap.Int64("slack", tuning.Slack),
		zap.Int64("camera_speed", tuning.CameraSpeed),
	)
}

func (g *Game) debugText() string {
	var cam component.WorldPosition
	if p, ok := ecs.Get(g.world, g.scene.Camera, component.WorldPositionComponent.Kind()); ok {
		cam = *p
	}
	return fmt.Sprintf("FPS: %.2f\ncamera: %d, %d\ncursor: %d, %d",
		ebiten.ActualFPS(), cam.X, cam.Y, g.frame.Cursor.X, g.frame.Cursor.Y)
}

func cursorText(p component.WorldPosition) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
