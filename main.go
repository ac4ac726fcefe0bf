package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/tailchase/common"
	"github.com/milk9111/tailchase/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and the debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sceneName := flag.String("scene", prefabs.SceneFile, "scene prefab in prefabs/")
	watch := flag.Bool("watch", false, "reload tuning.yaml from prefabs/ when it changes")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, *sceneName, *debug, *baseMonitor, *watch); err != nil {
		log.Error("exit", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger, sceneName string, debug, baseMonitor, watch bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	var reloads <-chan string
	if watch {
		watcher, err := prefabs.NewWatcher(log, prefabs.Dir)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		reloads = watcher.Events
		g.Go(func() error { return watcher.Run(ctx) })
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		clipboardOK = false
		log.Warn("clipboard unavailable", zap.Error(err))
	}

	game, err := NewGame(ctx, GameOptions{
		Scene:     sceneName,
		Debug:     debug,
		Log:       log,
		Reloads:   reloads,
		Clipboard: clipboardOK,
	})
	if err != nil {
		cancel()
		_ = g.Wait()
		return err
	}

	if baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("tailchase")

	runErr := ebiten.RunGame(game)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	cancel()
	return errors.Join(runErr, g.Wait())
}
