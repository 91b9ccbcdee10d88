// Package glfw3 registers the GLFW window backend. Import it for side effects.
package glfw3

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/spinquad/internal/platform"
	"github.com/pkg/errors"
)

const backendName = "glfw"

func init() {
	platform.Register(backendName, open)
}

// glfw delivers input through callbacks; they push into events and
// PollEvent pops from it.
type glfwWindowWrapper struct {
	window *glfw.Window
	events platform.EventQueue
}

func open(conf platform.WindowConfig) (platform.PlatformWindowWrapper, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return nil, errors.Wrap(err, "glfw.Init")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, conf.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, conf.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		return nil, errors.Wrap(err, "glfw.CreateWindow")
	}
	if conf.Centered {
		if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
			if mode := monitor.GetVideoMode(); mode != nil {
				window.SetPos(centeredPos(mode.Width, mode.Height, conf.Width, conf.Height))
			}
		}
	}
	window.MakeContextCurrent()
	if conf.VSync {
		glfw.SwapInterval(1)
	}

	w := &glfwWindowWrapper{window: window}
	window.SetCloseCallback(func(*glfw.Window) {
		w.onClose()
	})
	window.SetRefreshCallback(func(*glfw.Window) {
		w.onRefresh()
	})
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		w.onKey(scancode, action, glfw.GetKeyName(key, scancode))
	})
	return w, nil
}

func centeredPos(screenW, screenH, winW, winH int) (int, int) {
	return (screenW - winW) / 2, (screenH - winH) / 2
}

func (w *glfwWindowWrapper) onClose() {
	w.events.Push(platform.QuitEvent{})
}

func (w *glfwWindowWrapper) onRefresh() {
	w.events.Push(platform.Expose{})
}

// onKey drops repeats; the loop only sees edges.
func (w *glfwWindowWrapper) onKey(scancode int, action glfw.Action, label string) {
	if e, ok := keyEvent(scancode, action, label); ok {
		w.events.Push(e)
	}
}

func keyEvent(scancode int, action glfw.Action, label string) (platform.Event, bool) {
	switch action {
	case glfw.Press:
		return platform.KeyPress{Code: uint64(scancode), Label: label}, true
	case glfw.Release:
		return platform.KeyRelease{Code: uint64(scancode), Label: label}, true
	}
	return nil, false
}

func (w *glfwWindowWrapper) Backend() string { return backendName }

func (w *glfwWindowWrapper) Show() {
	w.window.Show()
}

func (w *glfwWindowWrapper) Close() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
	runtime.UnlockOSThread()
}

func (w *glfwWindowWrapper) PollEvent() (platform.Event, bool) {
	if w.events.Len() == 0 {
		glfw.PollEvents()
	}
	return w.events.Pop()
}

func (w *glfwWindowWrapper) SwapWindow() {
	w.window.SwapBuffers()
}

func (w *glfwWindowWrapper) GLProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}
