package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/kjkrol/spinquad/internal/renderer"
	"github.com/kjkrol/spinquad/pkg/gfx"
)

func init() {
	// The window, its GL context and every GL call stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(); err != nil {
		gfx.Logger().Error("spinquad aborted", "err", err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := renderer.DefaultRendererConfig()
	if err != nil {
		return err
	}

	window, err := gfx.NewWindow(gfx.DefaultWindowConfig(), renderer.NewRendererFactory(conf))
	if err != nil {
		return err
	}
	defer window.Close()

	window.Show()
	window.ListenEvents(nil)
	return nil
}
