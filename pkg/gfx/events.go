package gfx

import "github.com/kjkrol/spinquad/internal/platform"

type Event interface{}

type QuitEvent struct{}
type Expose struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type UnexpectedEvent struct{}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.QuitEvent:
		return QuitEvent{}
	case platform.Expose:
		return Expose{}
	case platform.KeyPress:
		return KeyPress{Code: e.Code, Label: e.Label}
	case platform.KeyRelease:
		return KeyRelease{Code: e.Code, Label: e.Label}
	default:
		return UnexpectedEvent{}
	}
}
