package renderer

import "github.com/kjkrol/spinquad/internal/assets"

// RendererConfig describes what the quad renderer draws. Program must expose
// a mat4 "transform" uniform and a sampler2D "tex0" uniform and read
// attributes 0 (position), 1 (color) and 2 (texture coordinate).
type RendererConfig struct {
	Program    assets.ProgramSource
	ImagePath  string
	ClearColor [4]float32
}

var DefaultClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

// DefaultRendererConfig uses the embedded quad program and the bundled image.
func DefaultRendererConfig() (RendererConfig, error) {
	program, err := assets.LoadProgram(assets.DefaultProgramName)
	if err != nil {
		return RendererConfig{}, err
	}
	return RendererConfig{
		Program:    program,
		ImagePath:  assets.ResolvePath(assets.ImagePath),
		ClearColor: DefaultClearColor,
	}, nil
}
