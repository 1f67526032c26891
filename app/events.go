package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/terminal"
)

// ErrEventsClosed is returned once the screen stops delivering events
var ErrEventsClosed = errors.New("event stream closed")

// EventSource yields at most one terminal event per call
// A nil event with a nil error means the timeout elapsed
type EventSource interface {
	Poll(ctx context.Context, timeout time.Duration) (tcell.Event, error)
}

// ScreenEvents pumps tcell events into a buffered channel on one goroutine
type ScreenEvents struct {
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
}

// NewScreenEvents starts the pump; call Close to stop it
func NewScreenEvents(screen tcell.Screen) *ScreenEvents {
	s := &ScreenEvents{
		events: make(chan tcell.Event, constants.EventChannelSize),
		quit:   make(chan struct{}),
	}
	// ChannelEvents closes events when it returns
	terminal.Go(func() {
		screen.ChannelEvents(s.events, s.quit)
	})
	return s
}

// Poll waits up to timeout for an event; a non-positive timeout only checks
func (s *ScreenEvents) Poll(ctx context.Context, timeout time.Duration) (tcell.Event, error) {
	if timeout <= 0 {
		select {
		case ev, ok := <-s.events:
			return received(ev, ok)
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			return nil, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-s.events:
		return received(ev, ok)
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, nil
	}
}

// Close stops the pump goroutine; safe to call more than once
func (s *ScreenEvents) Close() {
	s.once.Do(func() {
		close(s.quit)
	})
}

func received(ev tcell.Event, ok bool) (tcell.Event, error) {
	if !ok {
		return nil, ErrEventsClosed
	}
	return ev, nil
}
