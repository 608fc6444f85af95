package system

import (
	"log"
	"path/filepath"

	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/ecs/entity"
	"github.com/milk9111/locomotion/locomotion"
	"github.com/milk9111/locomotion/prefabs"
)

// ReloadSystem rebuilds player controllers when player.yaml changes on
// disk. Locomotion state survives the swap; only the tuning changes.
type ReloadSystem struct {
	watcher *prefabs.Watcher
	clock   locomotion.Clock
	load    func() (*prefabs.PlayerSpec, error)
}

func NewReloadSystem(watcher *prefabs.Watcher, clock locomotion.Clock) *ReloadSystem {
	return &ReloadSystem{watcher: watcher, clock: clock, load: prefabs.LoadPlayerSpec}
}

func (r *ReloadSystem) Update(w *ecs.World) {
	if r == nil || r.watcher == nil || w == nil {
		return
	}
	for {
		name, ok := r.watcher.Poll()
		if !ok {
			return
		}
		if filepath.Base(name) != "player.yaml" {
			continue
		}
		r.reload(w)
	}
}

func (r *ReloadSystem) reload(w *ecs.World) {
	spec, err := r.load()
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if mod, ok := prefabs.ModTime("player.yaml"); ok {
		log.Printf("reload: player.yaml modified %s", mod.Format("15:04:05"))
	}
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.LocomotionComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, _ *component.Locomotion) {
		if err := entity.RebuildController(w, e, spec.Locomotion, r.clock); err != nil {
			log.Printf("reload: entity %v: %v", e, err)
			return
		}
		log.Printf("reload: entity %v now %+v", e, spec.Locomotion)
	})
}
