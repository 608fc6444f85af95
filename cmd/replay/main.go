package main

import (
	"flag"
	"log"

	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/ecs/entity"
	"github.com/milk9111/locomotion/ecs/system"
	"github.com/milk9111/locomotion/levels"
	"github.com/milk9111/locomotion/locomotion"
	"github.com/milk9111/locomotion/physics"
	"github.com/milk9111/locomotion/prefabs"
)

func main() {
	levelName := flag.String("level", "arena", "level name in levels/")
	scriptName := flag.String("script", "replay", "input script in prefabs/scripts/")
	ticks := flag.Int("ticks", 180, "number of ticks to simulate")
	tps := flag.Int("tps", 60, "ticks per second")
	quiet := flag.Bool("q", false, "only log events and the final state")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("replay: tps must be positive, got %d", *tps)
	}
	dt := 1.0 / float64(*tps)

	lvl, err := levels.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	script, err := system.LoadScriptInput(*scriptName, dt)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}

	physicsWorld := physics.NewWorld(lvl)
	world := ecs.NewWorld()
	loco := system.NewLocomotionSystem(dt)
	player, err := entity.BuildPlayer(world, physicsWorld, spec, loco.Clock())
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	if ctrl := controllerOf(world, player); ctrl != nil {
		log.Printf("replay: level %q, dt %.4fs, tuning %+v", lvl.Name, loco.DT(), ctrl.Config())
	}

	events := system.NewEventLogSystem()
	scheduler := ecs.NewScheduler(
		system.NewScriptInputSystem(script),
		system.NewHazardSystem(physicsWorld, dt),
		loco,
		events,
	)

	for i := 0; i < *ticks; i++ {
		scheduler.Update(world)
		if !*quiet {
			logState(world, player, i)
		}
	}
	logState(world, player, *ticks-1)
	log.Printf("replay: %d script ticks, events %v", script.Tick(), events.Seen)
}

func logState(w *ecs.World, player ecs.Entity, tick int) {
	loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind())
	if !ok {
		return
	}
	t, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	health, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	ch, _ := ecs.Get(w, player, component.CharacterComponent.Kind())
	s := loco.Controller.State()
	log.Printf("tick %4d pos=%v vel=%v yaw=%.1f dj=%t coyote=%.3f hp=%.0f wall=%t",
		tick, t.Position, s.Velocity, s.Yaw, s.DoubleJumpAvailable, s.CoyoteDeadline, health.Current, ch.Body.HitWall())
}

func controllerOf(w *ecs.World, player ecs.Entity) *locomotion.Controller {
	loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind())
	if !ok || loco.Controller.Inert() {
		return nil
	}
	return loco.Controller
}
