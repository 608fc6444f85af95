package locomotion

// EventKind identifies a controller notification.
type EventKind string

const (
	EventGroundJump EventKind = "ground_jump"
	EventCoyoteJump EventKind = "coyote_jump"
	EventDoubleJump EventKind = "double_jump"
	EventDied       EventKind = "died"
	EventRevived    EventKind = "revived"
)

// Event is emitted from inside Tick. Time is the controller clock reading
// for that tick.
type Event struct {
	Kind EventKind
	Time float64
}

// EventSink receives controller events synchronously.
type EventSink func(Event)
