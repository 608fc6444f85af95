package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/locomotion/common"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/locomotion"
	"github.com/milk9111/locomotion/physics"
	"github.com/milk9111/locomotion/prefabs"
)

// BuildPlayer creates the player, its collision body, and one entity per
// name in spec.DisableWhileDead. All controllers should share clock so a
// rebuilt controller keeps the same notion of time.
func BuildPlayer(w *ecs.World, pw *physics.World, spec *prefabs.PlayerSpec, clock locomotion.Clock) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("player: nil world or spec")
	}

	var spawn common.Vec3
	var yaw float64
	if lvl := pw.Level(); lvl != nil {
		spawn = common.Vec3{X: lvl.Spawn.X, Y: lvl.Spawn.Y, Z: lvl.Spawn.Z}
		yaw = lvl.SpawnYaw
	}

	e := ecs.CreateEntity(w)
	transform := &component.Transform{Position: spawn, Heading: yaw}
	input := &component.Input{}
	health := component.NewHealth(spec.Health)
	body := physics.NewCharacterBody(pw, spawn, spec.Collider.Radius, spec.Collider.StepHeight)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transform); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), input); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), health); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{Body: body}); err != nil {
		return 0, fmt.Errorf("player: add character: %w", err)
	}

	activations := make([]*component.Activation, 0, len(spec.DisableWhileDead))
	for _, name := range spec.DisableWhileDead {
		dep := ecs.CreateEntity(w)
		act := &component.Activation{Name: name, Active: true}
		if err := ecs.Add(w, dep, component.ActivationComponent.Kind(), act); err != nil {
			return 0, fmt.Errorf("player: add activation %q: %w", name, err)
		}
		activations = append(activations, act)
	}

	loco := &component.Locomotion{Activations: activations}
	if err := ecs.Add(w, e, component.LocomotionComponent.Kind(), loco); err != nil {
		return 0, fmt.Errorf("player: add locomotion: %w", err)
	}
	if err := bindController(w, e, spec.Locomotion, clock, nil); err != nil {
		return e, err
	}
	return e, nil
}

// RebuildController swaps the entity's controller for one using cfg and
// carries the current locomotion state across.
func RebuildController(w *ecs.World, e ecs.Entity, cfg locomotion.Config, clock locomotion.Clock) error {
	loco, ok := ecs.Get(w, e, component.LocomotionComponent.Kind())
	if !ok {
		return fmt.Errorf("player: entity %v has no locomotion", e)
	}
	var state *locomotion.State
	if loco.Controller != nil {
		s := loco.Controller.State()
		state = &s
	}
	return bindController(w, e, cfg, clock, state)
}

func bindController(w *ecs.World, e ecs.Entity, cfg locomotion.Config, clock locomotion.Clock, state *locomotion.State) error {
	loco, _ := ecs.Get(w, e, component.LocomotionComponent.Kind())
	transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	health, _ := ecs.Get(w, e, component.HealthComponent.Kind())

	b := locomotion.Bindings{}
	if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok && ch.Body != nil {
		b.Movement = ch.Body
	}
	if input != nil {
		b.Input = input
	}
	if health != nil {
		b.Health = health
	}
	if transform != nil {
		b.Orientation = transform
	}
	for _, act := range loco.Activations {
		b.Activation = append(b.Activation, act)
	}

	opts := []locomotion.Option{
		locomotion.WithClock(clock),
		locomotion.WithEvents(func(ev locomotion.Event) {
			w.Events().Push(ecs.Event{Type: string(ev.Kind), Entity: e, Data: ev})
		}),
	}
	if state != nil {
		opts = append(opts, locomotion.WithState(*state))
	}

	ctrl, err := locomotion.New(cfg, b, opts...)
	loco.Controller = ctrl
	if err != nil {
		log.Printf("player: entity %v: %v", e, err)
		return err
	}
	return nil
}
