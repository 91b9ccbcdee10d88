// Package sdl2 registers the SDL2 window backend. Import it for side effects.
package sdl2

import (
	"runtime"
	"unsafe"

	"github.com/kjkrol/spinquad/internal/platform"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

const backendName = "sdl2"

func init() {
	platform.Register(backendName, open)
}

type sdlWindowWrapper struct {
	window  *sdl.Window
	context sdl.GLContext
}

func open(conf platform.WindowConfig) (platform.PlatformWindowWrapper, error) {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		runtime.UnlockOSThread()
		return nil, errors.Wrap(err, "SDL_Init")
	}

	w, err := newSDLWindowWrapper(conf)
	if err != nil {
		sdl.Quit()
		runtime.UnlockOSThread()
		return nil, err
	}
	return w, nil
}

func newSDLWindowWrapper(conf platform.WindowConfig) (*sdlWindowWrapper, error) {
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, conf.GLMajor},
		{sdl.GL_CONTEXT_MINOR_VERSION, conf.GLMinor},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return nil, errors.Wrapf(err, "SDL_GL_SetAttribute(%d)", a.attr)
		}
	}

	var x, y int32 = sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED
	if conf.Centered {
		x, y = sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED
	}
	window, err := sdl.CreateWindow(conf.Title, x, y, int32(conf.Width), int32(conf.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		return nil, errors.Wrap(err, "SDL_CreateWindow")
	}

	context, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		return nil, errors.Wrap(err, "SDL_GL_CreateContext")
	}
	if err := window.GLMakeCurrent(context); err != nil {
		sdl.GLDeleteContext(context)
		window.Destroy()
		return nil, errors.Wrap(err, "SDL_GL_MakeCurrent")
	}

	if conf.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			sdl.GLDeleteContext(context)
			window.Destroy()
			return nil, errors.Wrap(err, "SDL_GL_SetSwapInterval")
		}
	}

	return &sdlWindowWrapper{window: window, context: context}, nil
}

func (w *sdlWindowWrapper) Backend() string { return backendName }

func (w *sdlWindowWrapper) Show() {
	w.window.Show()
}

func (w *sdlWindowWrapper) Close() {
	if w.context != nil {
		sdl.GLDeleteContext(w.context)
		w.context = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
	runtime.UnlockOSThread()
}

func (w *sdlWindowWrapper) PollEvent() (platform.Event, bool) {
	e := sdl.PollEvent()
	if e == nil {
		return nil, false
	}
	return convert(e), true
}

func (w *sdlWindowWrapper) SwapWindow() {
	w.window.GLSwap()
}

func (w *sdlWindowWrapper) GLProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

func convert(event sdl.Event) platform.Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return platform.QuitEvent{}
	case *sdl.KeyboardEvent:
		code := uint64(e.Keysym.Scancode)
		label := sdl.GetKeyName(e.Keysym.Sym)
		if e.Type == sdl.KEYUP {
			return platform.KeyRelease{Code: code, Label: label}
		}
		return platform.KeyPress{Code: code, Label: label}
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_EXPOSED {
			return platform.Expose{}
		}
	}
	return platform.UnexpectedEvent{}
}
