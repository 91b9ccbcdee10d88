package sdl2

import (
	"testing"

	"github.com/kjkrol/spinquad/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestConvertQuit(t *testing.T) {
	assert.Equal(t, platform.QuitEvent{}, convert(&sdl.QuitEvent{Type: sdl.QUIT}))
}

func TestConvertKeyboard(t *testing.T) {
	down := convert(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A, Sym: sdl.K_a}})
	up := convert(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A, Sym: sdl.K_a}})

	if assert.IsType(t, platform.KeyPress{}, down) {
		assert.Equal(t, uint64(sdl.SCANCODE_A), down.(platform.KeyPress).Code)
	}
	if assert.IsType(t, platform.KeyRelease{}, up) {
		assert.Equal(t, uint64(sdl.SCANCODE_A), up.(platform.KeyRelease).Code)
	}
}

func TestConvertWindowAndOtherEvents(t *testing.T) {
	assert.Equal(t, platform.Expose{}, convert(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_EXPOSED}))
	assert.Equal(t, platform.UnexpectedEvent{}, convert(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED}))
	assert.Equal(t, platform.UnexpectedEvent{}, convert(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION}))
}
