package renderer

import "github.com/kjkrol/spinquad/pkg/gfx"

func NewRendererFactory(conf RendererConfig) gfx.RendererFactory {
	return func(w *gfx.Window) (gfx.Renderer, error) {
		r, err := newRenderer(w, conf)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}
