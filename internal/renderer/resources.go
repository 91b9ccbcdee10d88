package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/spinquad/internal/assets"
	"github.com/pkg/errors"
)

// Every wrapper below owns one GL object name. Delete is idempotent and safe
// on a nil receiver, so partially built renderers can always be released.

type VertexArray struct {
	id uint32
}

func NewVertexArray() (*VertexArray, error) {
	var id uint32
	gl.GenVertexArrays(1, &id)
	if id == 0 {
		return nil, errors.New("glGenVertexArrays returned no name")
	}
	return &VertexArray{id: id}, nil
}

func (v *VertexArray) Bind() {
	gl.BindVertexArray(v.id)
}

func (v *VertexArray) Delete() {
	if v == nil || v.id == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &v.id)
	v.id = 0
}

type Buffer struct {
	id     uint32
	target uint32
}

func NewBuffer(target uint32) (*Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil, errors.New("glGenBuffers returned no name")
	}
	return &Buffer{id: id, target: target}, nil
}

func (b *Buffer) Bind() {
	gl.BindBuffer(b.target, b.id)
}

// Upload binds the buffer and replaces its whole store.
func (b *Buffer) Upload(size int, data unsafe.Pointer, usage uint32) {
	b.Bind()
	gl.BufferData(b.target, size, data, usage)
}

func (b *Buffer) Delete() {
	if b == nil || b.id == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.id)
	b.id = 0
}

type Texture struct {
	id uint32
}

// NewTexture2D uploads img with repeat wrapping, linear filtering and a full
// mipmap chain. img is not referenced afterwards.
func NewTexture2D(img *assets.Image) (*Texture, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, errors.New("texture: empty image")
	}
	if len(img.Pix) < img.Width*img.Height*4 {
		return nil, errors.Errorf("texture: %d bytes for %dx%d RGBA", len(img.Pix), img.Width, img.Height)
	}
	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return nil, errors.New("glGenTextures returned no name")
	}
	t := &Texture{id: id}

	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return t, nil
}

// Bind makes the texture current on the given unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *Texture) Delete() {
	if t == nil || t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
