package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func queuePoll(events ...Event) func() (Event, bool) {
	return func() (Event, bool) {
		if len(events) == 0 {
			return nil, false
		}
		e := events[0]
		events = events[1:]
		return e, true
	}
}

func TestDrainAllConsumesEverything(t *testing.T) {
	var handled []Event
	n := DrainAll().Consume(queuePoll(Expose{}, KeyPress{}, QuitEvent{}), func(e Event) {
		handled = append(handled, e)
	})
	assert.Equal(t, 3, n)
	assert.Equal(t, []Event{Expose{}, KeyPress{}, QuitEvent{}}, handled)
}

func TestDrainMaxStopsAtLimit(t *testing.T) {
	poll := queuePoll(Expose{}, Expose{}, Expose{})
	assert.Equal(t, 2, DrainMax(2).Consume(poll, func(Event) {}))
	assert.Equal(t, 1, DrainMax(2).Consume(poll, func(Event) {}))
	assert.Equal(t, 0, DrainMax(2).Consume(poll, func(Event) {}))
}

func TestDrainMaxNonPositiveMeansOne(t *testing.T) {
	poll := queuePoll(Expose{}, Expose{})
	assert.Equal(t, 1, DrainMax(0).Consume(poll, func(Event) {}))
}
