package assets

import (
	"embed"
	"path"
	"strings"

	"github.com/pkg/errors"
)

//go:embed shaders
var shaderFS embed.FS

// DefaultProgramName is the textured, color-tinted quad program.
const DefaultProgramName = "quad"

type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

func (s Stage) ext() string {
	if s == VertexStage {
		return ".vert"
	}
	return ".frag"
}

type ShaderSource struct {
	Name   string
	Stage  Stage
	Source string
}

// Version returns the argument of the leading #version directive,
// e.g. "330 core".
func (s ShaderSource) Version() (string, error) {
	for _, line := range strings.Split(s.Source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#version") {
			break
		}
		version := strings.TrimSpace(strings.TrimPrefix(line, "#version"))
		if version == "" {
			break
		}
		return version, nil
	}
	return "", errors.Errorf("shader %s: missing #version directive", s.Name)
}

// ProgramSource is the pair of stages linked into one program.
type ProgramSource struct {
	Name     string
	Vertex   ShaderSource
	Fragment ShaderSource
}

// NewProgramSource builds a program from literal sources, bypassing the
// embedded ones.
func NewProgramSource(name, vertex, fragment string) ProgramSource {
	return ProgramSource{
		Name:     name,
		Vertex:   ShaderSource{Name: name + VertexStage.ext(), Stage: VertexStage, Source: vertex},
		Fragment: ShaderSource{Name: name + FragmentStage.ext(), Stage: FragmentStage, Source: fragment},
	}
}

// Version is the GLSL version shared by both stages.
func (p ProgramSource) Version() (string, error) {
	vertex, err := p.Vertex.Version()
	if err != nil {
		return "", err
	}
	fragment, err := p.Fragment.Version()
	if err != nil {
		return "", err
	}
	if vertex != fragment {
		return "", errors.Errorf("program %s: vertex stage is %q but fragment stage is %q", p.Name, vertex, fragment)
	}
	return vertex, nil
}

// LoadProgram reads <name>.vert and <name>.frag from the embedded shaders.
func LoadProgram(name string) (ProgramSource, error) {
	read := func(stage Stage) (string, error) {
		data, err := shaderFS.ReadFile(path.Join("shaders", name+stage.ext()))
		if err != nil {
			return "", errors.Wrapf(err, "program %s: %s stage", name, stage)
		}
		return string(data), nil
	}
	vertex, err := read(VertexStage)
	if err != nil {
		return ProgramSource{}, err
	}
	fragment, err := read(FragmentStage)
	if err != nil {
		return ProgramSource{}, err
	}
	program := NewProgramSource(name, vertex, fragment)
	if _, err := program.Version(); err != nil {
		return ProgramSource{}, err
	}
	return program, nil
}

// Programs lists the names of all embedded programs.
func Programs() []string {
	entries, err := shaderFS.ReadDir("shaders")
	if err != nil {
		return nil
	}
	var names []string
	seen := map[string]bool{}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
