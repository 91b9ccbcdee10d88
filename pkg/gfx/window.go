package gfx

import (
	"context"
	"time"
	"unsafe"

	"github.com/kjkrol/spinquad/internal/platform"
	"github.com/pkg/errors"
)

type WindowConfig struct {
	Title    string
	Width    int
	Height   int
	Centered bool
	VSync    bool
	GLMajor  int
	GLMinor  int
}

// DefaultWindowConfig is 800x600, centered, vsync on, OpenGL 3.3 core.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:    "spinquad",
		Width:    800,
		Height:   600,
		Centered: true,
		VSync:    true,
		GLMajor:  3,
		GLMinor:  3,
	}
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{
		Title:    w.Title,
		Width:    w.Width,
		Height:   w.Height,
		Centered: w.Centered,
		VSync:    w.VSync,
		GLMajor:  w.GLMajor,
		GLMinor:  w.GLMinor,
	}
}

// Window owns the native window, its GL context and the renderer drawing
// into it. It is not safe for concurrent use; only Stop may be called from
// another goroutine.
type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	animation          Animation
	strategy           EventsConsumerStrategy
	now                func() time.Time
	state              LoopState
	frames             uint64
	width              int
	height             int
	ctx                context.Context
	cancel             context.CancelFunc
}

func NewWindow(conf WindowConfig, factory RendererFactory) (*Window, error) {
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}
	Logger().Info("window created",
		"backend", wrapper.Backend(),
		"width", conf.Width,
		"height", conf.Height,
		"vsync", conf.VSync)

	window := newWindow(wrapper, conf)
	if factory != nil {
		renderer, err := factory(window)
		if err != nil {
			window.Close()
			return nil, errors.Wrap(err, "create renderer")
		}
		window.renderer = renderer
	}
	return window, nil
}

func newWindow(wrapper platform.PlatformWindowWrapper, conf WindowConfig) *Window {
	window := &Window{
		platformWinWrapper: wrapper,
		animation:          PulseSpin,
		strategy:           DrainAll(),
		now:                time.Now,
		width:              conf.Width,
		height:             conf.Height,
	}
	window.ctx, window.cancel = context.WithCancel(context.Background())
	return window
}

func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

func (w *Window) Show() {
	w.platformWinWrapper.Show()
}

// GLProcAddress resolves GL entry points through the window's context.
func (w *Window) GLProcAddress(name string) unsafe.Pointer {
	return w.platformWinWrapper.GLProcAddress(name)
}

func (w *Window) SetAnimation(animation Animation) {
	if animation == nil {
		animation = PulseSpin
	}
	w.animation = animation
}

func (w *Window) SetEventsStrategy(strategy EventsConsumerStrategy) {
	if strategy == nil {
		strategy = DrainAll()
	}
	w.strategy = strategy
}

func (w *Window) State() LoopState {
	return w.state
}

// Frames reports how many frames have been presented.
func (w *Window) Frames() uint64 {
	return w.frames
}

// Stop asks a running loop to quit before its next frame.
func (w *Window) Stop() {
	w.cancel()
}

func (w *Window) Close() {
	w.cancel()
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	if w.platformWinWrapper != nil {
		w.platformWinWrapper.Close()
		w.platformWinWrapper = nil
	}
}
