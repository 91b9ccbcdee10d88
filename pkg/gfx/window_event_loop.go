package gfx

import (
	"runtime"
)

type LoopState int

const (
	Running LoopState = iota
	Quitting
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case Quitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// ListenEvents runs the frame loop until a QuitEvent arrives or Stop is
// called. Each iteration drains input, then draws and presents one frame
// unless the loop is quitting. handleEvent sees every event and may be nil.
func (w *Window) ListenEvents(handleEvent func(event Event)) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	poll := func() (Event, bool) {
		platformEvent, ok := w.platformWinWrapper.PollEvent()
		if !ok {
			return nil, false
		}
		return convert(platformEvent), true
	}
	handle := func(event Event) {
		if _, ok := event.(QuitEvent); ok {
			w.state = Quitting
		}
		if handleEvent != nil {
			handleEvent(event)
		}
	}

	w.state = Running
	start := w.now()
	Logger().Info("frame loop started")

	for {
		select {
		case <-w.ctx.Done():
			w.state = Quitting
		default:
			w.strategy.Consume(poll, handle)
		}
		if w.state == Quitting {
			Logger().Info("frame loop stopped", "frames", w.frames)
			return
		}

		elapsed := w.now().Sub(start)
		if w.renderer != nil {
			w.renderer.Render(Frame{Elapsed: elapsed, Transform: w.animation(elapsed)})
		}
		w.platformWinWrapper.SwapWindow()
		w.frames++
	}
}
