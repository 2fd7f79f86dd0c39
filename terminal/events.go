package terminal

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuio-hockey/input"
)

// eventBuffer bounds queued key events between frames
const eventBuffer = 100

// EventSource polls tcell on its own goroutine and hands events to the frame loop.
// Once the poller stops, the next Drain reports input.KeyClose exactly once.
type EventSource struct {
	screen tcell.Screen
	events chan tcell.Event
	stop   chan struct{}
	done   chan struct{}

	stopOnce sync.Once
	mu       sync.Mutex
	err      error
	reported bool
}

// NewEventSource starts polling; the goroutine ends when the screen is finalized or Close is called
func NewEventSource(screen tcell.Screen) *EventSource {
	es := &EventSource{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go es.poll()
	return es
}

func (es *EventSource) poll() {
	defer close(es.done)
	// Panic recovery: the frame loop sees KeyClose and main reports Err
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event poller crashed: %v\n%s", r, debug.Stack())
			es.fail(fmt.Errorf("event poller panic: %v", r))
		}
	}()

	for {
		ev := es.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventError:
			es.fail(fmt.Errorf("terminal: %w", ev))
			return
		}
		select {
		case es.events <- ev:
		case <-es.stop:
			return
		}
	}
}

func (es *EventSource) fail(err error) {
	es.mu.Lock()
	es.err = err
	es.mu.Unlock()
}

// Drain returns every key event queued since the last call without blocking
func (es *EventSource) Drain() []input.Event {
	var out []input.Event
	for {
		select {
		case ev := <-es.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k := Translate(ev); k != input.KeyNone {
					out = append(out, input.Event{Key: k})
				}
			case *tcell.EventResize:
				es.screen.Sync()
			}
		default:
			if es.stopped() {
				out = append(out, input.Event{Key: input.KeyClose})
			}
			return out
		}
	}
}

// stopped reports the poller exit once
func (es *EventSource) stopped() bool {
	select {
	case <-es.done:
	default:
		return false
	}
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.reported {
		return false
	}
	es.reported = true
	return true
}

// Close stops the poller from delivering further events; it is safe to call more than once
func (es *EventSource) Close() {
	es.stopOnce.Do(func() { close(es.stop) })
}

// Done is closed once the poller stops
func (es *EventSource) Done() <-chan struct{} {
	return es.done
}

// Err returns the failure that stopped the poller, nil after a clean shutdown
func (es *EventSource) Err() error {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.err
}

// Translate maps a tcell key event to a game key
func Translate(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyCtrlC:
		return input.KeyCtrlC
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return input.KeySpace
		}
	}
	return input.KeyNone
}
