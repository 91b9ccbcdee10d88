package gfx

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is everything a renderer needs to draw one iteration of the loop.
type Frame struct {
	Elapsed   time.Duration
	Transform mgl32.Mat4
}

type Renderer interface {
	Render(frame Frame)
	Close()
}

// RendererFactory builds the renderer once the window's GL context is current.
type RendererFactory func(w *Window) (Renderer, error)
