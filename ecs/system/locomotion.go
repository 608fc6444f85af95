package system

import (
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/locomotion"
)

// LocomotionSystem ticks every controller with a fixed step and owns the
// clock those controllers share.
type LocomotionSystem struct {
	dt    float64
	clock *locomotion.ManualClock
}

func NewLocomotionSystem(dt float64) *LocomotionSystem {
	return &LocomotionSystem{dt: dt, clock: &locomotion.ManualClock{}}
}

func (s *LocomotionSystem) Clock() *locomotion.ManualClock {
	if s == nil {
		return nil
	}
	return s.clock
}

func (s *LocomotionSystem) DT() float64 {
	if s == nil {
		return 0
	}
	return s.dt
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.LocomotionComponent.Kind(), func(e ecs.Entity, loco *component.Locomotion) {
		loco.Controller.Tick(s.dt)
	})

	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ch *component.Character, t *component.Transform) {
		if ch.Body != nil {
			t.Position = ch.Body.Position()
		}
	})

	s.clock.Advance(s.dt)
}
