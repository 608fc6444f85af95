package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/entity"
	"github.com/milk9111/locomotion/ecs/render"
	"github.com/milk9111/locomotion/ecs/system"
	"github.com/milk9111/locomotion/levels"
	"github.com/milk9111/locomotion/physics"
	"github.com/milk9111/locomotion/prefabs"
)

const (
	baseWidth      = 1280
	baseHeight     = 720
	ticksPerSecond = 60
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *render.Renderer
	watcher   *prefabs.Watcher
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	lvl, err := levels.LoadLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	dt := 1.0 / float64(ticksPerSecond)
	physicsWorld := physics.NewWorld(lvl)
	world := ecs.NewWorld()
	loco := system.NewLocomotionSystem(dt)

	// An inert controller is still usable; the error has already been logged.
	if _, err := entity.BuildPlayer(world, physicsWorld, spec, loco.Clock()); err != nil {
		log.Printf("game: player: %v", err)
	}

	g := &Game{
		world:    world,
		renderer: render.NewRenderer(lvl, debug),
	}

	var reload ecs.System
	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: watch prefabs: %v", err)
		} else {
			g.watcher = w
			reload = system.NewReloadSystem(w, loco.Clock())
		}
	}

	g.scheduler = ecs.NewScheduler(
		NewInputSystem(),
		system.NewHazardSystem(physicsWorld, dt),
		loco,
		reload,
		system.NewEventLogSystem(),
	)
	log.Printf("game: level %q loaded, player %q", lvl.Name, spec.Name)
	return g, nil
}

func (g *Game) Update() error {
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
