package renderer

import (
	"bytes"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/spinquad/internal/assets"
	"github.com/kjkrol/spinquad/pkg/gfx"
	"github.com/pkg/errors"
)

const linkStage = "link"

// ShaderError carries the driver's info log for a failed compile or link.
type ShaderError struct {
	Stage string
	Name  string
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == linkStage {
		return fmt.Sprintf("link program %s: %s", e.Name, e.Log)
	}
	return fmt.Sprintf("compile %s shader %s: %s", e.Stage, e.Name, e.Log)
}

// infoLog cuts the NUL-terminated log the driver wrote into buf.
func infoLog(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	log := string(bytes.TrimSpace(buf))
	if log == "" {
		return "no info log"
	}
	return log
}

type Shader struct {
	id uint32
}

func (s *Shader) Delete() {
	if s == nil || s.id == 0 {
		return
	}
	gl.DeleteShader(s.id)
	s.id = 0
}

func glShaderType(stage assets.Stage) uint32 {
	if stage == assets.VertexStage {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func compileShader(src assets.ShaderSource) (*Shader, error) {
	id := gl.CreateShader(glShaderType(src.Stage))
	if id == 0 {
		return nil, errors.Errorf("create %s shader %s", src.Stage, src.Name)
	}
	shader := &Shader{id: id}

	csources, free := gl.Strs(src.Source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		buf := make([]byte, logLength+1)
		gl.GetShaderInfoLog(id, logLength+1, nil, &buf[0])
		shader.Delete()
		return nil, &ShaderError{Stage: src.Stage.String(), Name: src.Name, Log: infoLog(buf)}
	}
	return shader, nil
}

type Program struct {
	id uint32
}

// BuildProgram compiles both stages and links them. The shader objects are
// deleted before returning, whatever the outcome.
func BuildProgram(src assets.ProgramSource) (*Program, error) {
	version, err := src.Version()
	if err != nil {
		return nil, err
	}

	vertex, err := compileShader(src.Vertex)
	if err != nil {
		return nil, err
	}
	defer vertex.Delete()
	fragment, err := compileShader(src.Fragment)
	if err != nil {
		return nil, err
	}
	defer fragment.Delete()

	id := gl.CreateProgram()
	if id == 0 {
		return nil, errors.Errorf("create program %s", src.Name)
	}
	program := &Program{id: id}
	gl.AttachShader(id, vertex.id)
	gl.AttachShader(id, fragment.id)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		buf := make([]byte, logLength+1)
		gl.GetProgramInfoLog(id, logLength+1, nil, &buf[0])
		program.Delete()
		return nil, &ShaderError{Stage: linkStage, Name: src.Name, Log: infoLog(buf)}
	}

	gl.DetachShader(id, vertex.id)
	gl.DetachShader(id, fragment.id)
	gfx.Logger().Info("program linked", "name", src.Name, "glsl", version)
	return program, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// UniformLocation returns -1 when the program has no active uniform name.
func (p *Program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
}

func (p *Program) Delete() {
	if p == nil || p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}
