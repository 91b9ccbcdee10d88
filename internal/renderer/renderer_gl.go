package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/spinquad/internal/assets"
	"github.com/kjkrol/spinquad/pkg/gfx"
	"github.com/pkg/errors"
)

const textureUnit = 0

type renderer struct {
	vao     *VertexArray
	vbo     *Buffer
	ebo     *Buffer
	texture *Texture
	program *Program

	transformUniform int32
	indexCount       int32
}

// newRenderer creates every GPU object the quad needs. On failure whatever
// was already created is released before returning.
func newRenderer(w *gfx.Window, conf RendererConfig) (_ *renderer, err error) {
	if err := gl.InitWithProcAddrFunc(w.GLProcAddress); err != nil {
		return nil, errors.Wrap(err, "load GL functions")
	}
	gfx.Logger().Info("GL context",
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))

	r := &renderer{indexCount: int32(len(gfx.QuadIndices))}
	defer func() {
		if err != nil {
			r.Close()
		}
	}()

	width, height := w.Size()
	gl.Viewport(0, 0, int32(width), int32(height))
	c := conf.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	if r.vao, err = NewVertexArray(); err != nil {
		return nil, err
	}
	r.vao.Bind()

	if r.vbo, err = NewBuffer(gl.ARRAY_BUFFER); err != nil {
		return nil, err
	}
	vertices := gfx.Flatten(gfx.QuadVertices[:])
	r.vbo.Upload(len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	if r.ebo, err = NewBuffer(gl.ELEMENT_ARRAY_BUFFER); err != nil {
		return nil, err
	}
	indices := gfx.QuadIndices[:]
	r.ebo.Upload(len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	for _, attr := range gfx.VertexLayout {
		gl.VertexAttribPointer(attr.Location, attr.Size, gl.FLOAT, false, int32(gfx.VertexStride), gl.PtrOffset(attr.Offset))
		gl.EnableVertexAttribArray(attr.Location)
	}

	img, err := assets.LoadImage(conf.ImagePath)
	if err != nil {
		return nil, err
	}
	gfx.Logger().Info("image decoded", "path", conf.ImagePath, "width", img.Width, "height", img.Height)
	if r.texture, err = NewTexture2D(img); err != nil {
		return nil, err
	}

	if r.program, err = BuildProgram(conf.Program); err != nil {
		return nil, err
	}
	r.program.Use()

	r.texture.Bind(textureUnit)
	gl.Uniform1i(r.program.UniformLocation("tex0"), textureUnit)
	r.transformUniform = r.program.UniformLocation("transform")
	if r.transformUniform < 0 {
		gfx.Logger().Warn("program has no transform uniform", "program", conf.Program.Name)
	}
	return r, nil
}

func (r *renderer) Render(frame gfx.Frame) {
	gl.UniformMatrix4fv(r.transformUniform, 1, false, &frame.Transform[0])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (r *renderer) Close() {
	r.program.Delete()
	r.texture.Delete()
	r.ebo.Delete()
	r.vbo.Delete()
	r.vao.Delete()
	r.program, r.texture, r.ebo, r.vbo, r.vao = nil, nil, nil, nil, nil
}
