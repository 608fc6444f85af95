package system

import (
	"log"

	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/locomotion"
)

// EventLogSystem drains the world event queue and logs each event. It
// should run last so it sees everything pushed this frame.
type EventLogSystem struct {
	// Seen counts drained events by type.
	Seen map[string]int
}

func NewEventLogSystem() *EventLogSystem {
	return &EventLogSystem{Seen: make(map[string]int)}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		s.Seen[evt.Type]++
		if ev, ok := evt.Data.(locomotion.Event); ok {
			log.Printf("event: %s entity %v at %.3fs", evt.Type, evt.Entity, ev.Time)
			continue
		}
		log.Printf("event: %s entity %v", evt.Type, evt.Entity)
	}
}
