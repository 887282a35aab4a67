// Package feedback is the process-wide, fire-and-forget notification bus for
// user-visible status messages. Producers never block: when the buffer is
// full the oldest event is dropped. Events emitted after the UI has stopped
// listening are tolerated and simply age out.
package feedback

import "sync"

// Level is the severity of a feedback event.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// Event is one user-visible status message.
type Event struct {
	Level   Level
	Message string
	Detail  string
}

const bufferSize = 64

var (
	mu     sync.Mutex
	events = make(chan Event, bufferSize)
)

// Info emits an informational event.
func Info(message string) {
	Emit(Event{Level: LevelInfo, Message: message})
}

// Error emits an error event with optional detail.
func Error(message, detail string) {
	Emit(Event{Level: LevelError, Message: message, Detail: detail})
}

// Emit publishes an event without blocking. If the buffer is full the oldest
// pending event is discarded to make room.
func Emit(ev Event) {
	mu.Lock()
	defer mu.Unlock()
	for {
		select {
		case events <- ev:
			return
		default:
			select {
			case <-events:
			default:
			}
		}
	}
}

// Next blocks until an event is available and returns it. Intended to be
// wrapped in a tea.Cmd by the UI.
func Next() Event {
	return <-events
}

// TryNext returns a pending event without blocking. ok is false when the bus
// is empty.
func TryNext() (Event, bool) {
	select {
	case ev := <-events:
		return ev, true
	default:
		return Event{}, false
	}
}
