package system

import (
	"log"

	"github.com/milk9111/locomotion/common"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/physics"
)

// HazardSystem damages characters standing in hazards and revives dead
// ones on request at the level spawn. Locomotion state is left alone.
type HazardSystem struct {
	world *physics.World
	dt    float64
}

func NewHazardSystem(world *physics.World, dt float64) *HazardSystem {
	return &HazardSystem{world: world, dt: dt}
}

func (h *HazardSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}
	ecs.ForEach3(w,
		component.CharacterComponent.Kind(),
		component.HealthComponent.Kind(),
		component.InputComponent.Kind(),
		func(e ecs.Entity, ch *component.Character, health *component.Health, input *component.Input) {
			if !health.IsAlive() {
				if input.Revive && health.Revive() {
					spawn := h.spawn()
					ch.Body.Teleport(spawn)
					log.Printf("hazard: entity %v revived at %v", e, spawn)
				}
				return
			}
			if ch.Body == nil || !ch.Body.IsGrounded() {
				return
			}
			pos := ch.Body.Position()
			dps, ok := h.world.HazardAt(pos.X, pos.Z)
			if !ok {
				return
			}
			if health.ApplyDamage(dps*h.dt) && !health.IsAlive() {
				log.Printf("hazard: entity %v died at %v", e, pos)
			}
		})
}

func (h *HazardSystem) spawn() common.Vec3 {
	lvl := h.world.Level()
	if lvl == nil {
		return common.Vec3{}
	}
	return common.Vec3{X: lvl.Spawn.X, Y: lvl.Spawn.Y, Z: lvl.Spawn.Z}
}
