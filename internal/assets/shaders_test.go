package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultProgram(t *testing.T) {
	program, err := LoadProgram(DefaultProgramName)
	require.NoError(t, err)

	assert.Equal(t, "quad.vert", program.Vertex.Name)
	assert.Equal(t, VertexStage, program.Vertex.Stage)
	assert.Equal(t, "quad.frag", program.Fragment.Name)
	assert.Equal(t, FragmentStage, program.Fragment.Stage)

	version, err := program.Version()
	require.NoError(t, err)
	assert.Equal(t, "330 core", version)

	assert.Contains(t, program.Vertex.Source, "uniform mat4 transform;")
	assert.Contains(t, program.Fragment.Source, "uniform sampler2D tex0;")
	for _, loc := range []string{"location = 0", "location = 1", "location = 2"} {
		assert.Contains(t, program.Vertex.Source, loc)
	}
}

func TestLoadProgramUnknown(t *testing.T) {
	_, err := LoadProgram("nope")
	assert.ErrorContains(t, err, "program nope")
}

func TestProgramsListsEmbedded(t *testing.T) {
	assert.Equal(t, []string{"quad"}, Programs())
}

func TestShaderVersion(t *testing.T) {
	cases := []struct {
		source  string
		version string
		ok      bool
	}{
		{"#version 330 core\nvoid main() {}", "330 core", true},
		{"\n\n  #version 150\n", "150", true},
		{"void main() {}", "", false},
		{"#version\n", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		version, err := ShaderSource{Name: "s", Source: c.source}.Version()
		if !c.ok {
			assert.Error(t, err, c.source)
			continue
		}
		require.NoError(t, err, c.source)
		assert.Equal(t, c.version, version)
	}
}

func TestProgramVersionMismatch(t *testing.T) {
	program := NewProgramSource("mixed", "#version 330 core\n", "#version 150\n")
	_, err := program.Version()
	assert.ErrorContains(t, err, "mixed")
}

func TestNewProgramSourceNamesStages(t *testing.T) {
	program := NewProgramSource("broken", "v", "f")
	assert.True(t, strings.HasSuffix(program.Vertex.Name, ".vert"))
	assert.True(t, strings.HasSuffix(program.Fragment.Name, ".frag"))
}
