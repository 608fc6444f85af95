package system

import (
	"testing"

	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/ecs/entity"
	"github.com/milk9111/locomotion/levels"
	"github.com/milk9111/locomotion/locomotion"
	"github.com/milk9111/locomotion/physics"
	"github.com/milk9111/locomotion/prefabs"
)

const testDT = 1.0 / 60

type harness struct {
	w      *ecs.World
	pw     *physics.World
	player ecs.Entity
	loco   *LocomotionSystem
	hazard *HazardSystem
}

func newHarness(t *testing.T, lvl *levels.Level) *harness {
	t.Helper()
	spec := &prefabs.PlayerSpec{
		Name:             "player",
		Locomotion:       locomotion.DefaultConfig(),
		Collider:         prefabs.ColliderSpec{Radius: 0.5, StepHeight: 0.5},
		Health:           100,
		DisableWhileDead: []string{"weapon", "hud"},
	}
	h := &harness{
		w:    ecs.NewWorld(),
		pw:   physics.NewWorld(lvl),
		loco: NewLocomotionSystem(testDT),
	}
	h.hazard = NewHazardSystem(h.pw, testDT)
	player, err := entity.BuildPlayer(h.w, h.pw, spec, h.loco.Clock())
	if err != nil {
		t.Fatalf("BuildPlayer failed: %v", err)
	}
	h.player = player
	return h
}

func (h *harness) step(in component.Input) {
	input, _ := ecs.Get(h.w, h.player, component.InputComponent.Kind())
	*input = in
	h.hazard.Update(h.w)
	h.loco.Update(h.w)
}

func (h *harness) controller() *locomotion.Controller {
	loco, _ := ecs.Get(h.w, h.player, component.LocomotionComponent.Kind())
	return loco.Controller
}

func (h *harness) transform() *component.Transform {
	t, _ := ecs.Get(h.w, h.player, component.TransformComponent.Kind())
	return t
}

func (h *harness) lastEvent() string {
	evs := h.w.Events().Peek()
	if len(evs) == 0 {
		return ""
	}
	return evs[len(evs)-1].Type
}

func (h *harness) activations() []*component.Activation {
	loco, _ := ecs.Get(h.w, h.player, component.LocomotionComponent.Kind())
	return loco.Activations
}

func TestLocomotionSystemGroundJump(t *testing.T) {
	h := newHarness(t, &levels.Level{Name: "flat"})

	h.step(component.Input{Jump: true})

	if y := h.transform().Position.Y; y <= 0 {
		t.Fatalf("expected to leave the ground, got y=%v", y)
	}
	if got := h.lastEvent(); got != string(locomotion.EventGroundJump) {
		t.Fatalf("expected ground_jump event, got %q", got)
	}
	if got := h.loco.Clock().Now(); got != testDT {
		t.Fatalf("expected shared clock at %v, got %v", testDT, got)
	}

	for i := 0; i < 200; i++ {
		h.step(component.Input{})
	}
	if y := h.transform().Position.Y; y != 0 {
		t.Fatalf("expected to land back on the floor, got y=%v", y)
	}
	if s := h.controller().State(); s.Velocity.Y != locomotion.GroundedFallSpeed {
		t.Fatalf("expected resting fall speed after landing, got %v", s.Velocity.Y)
	}
}

func TestLocomotionSystemCoyoteJumpOffLedge(t *testing.T) {
	lvl := &levels.Level{
		Name:  "ledge",
		Spawn: levels.Point{X: -6, Y: 1.5},
		Platforms: []levels.Platform{
			{Rect: levels.Rect{MinX: -10, MinZ: -5, MaxX: -5, MaxZ: 5}, Top: 1.5},
		},
	}
	h := newHarness(t, lvl)

	body, _ := ecs.Get(h.w, h.player, component.CharacterComponent.Kind())
	for i := 0; i < 30 && body.Body.IsGrounded(); i++ {
		h.step(component.Input{MoveX: 1})
	}
	if body.Body.IsGrounded() {
		t.Fatal("expected to walk off the ledge")
	}

	h.step(component.Input{MoveX: 1, Jump: true})

	if got := h.lastEvent(); got != string(locomotion.EventCoyoteJump) {
		t.Fatalf("expected coyote_jump, got %q", got)
	}
	if !h.controller().State().DoubleJumpAvailable {
		t.Fatal("coyote jump must leave the double jump available")
	}

	for i := 0; i < 10; i++ {
		h.step(component.Input{})
	}
	h.step(component.Input{Jump: true})
	if got := h.lastEvent(); got != string(locomotion.EventDoubleJump) {
		t.Fatalf("expected double_jump after the window closed, got %q", got)
	}
}

func TestHazardDeathFreezesAndReviveResumes(t *testing.T) {
	lvl := &levels.Level{
		Name: "lava",
		Hazards: []levels.Hazard{
			{Rect: levels.Rect{MinX: -1, MinZ: -1, MaxX: 1, MaxZ: 1}, DamagePerSecond: 6000},
		},
	}
	h := newHarness(t, lvl)

	h.step(component.Input{MoveZ: 1})
	for _, a := range h.activations() {
		if a.Active {
			t.Fatalf("expected %s to be disabled after dying", a.Name)
		}
	}
	if got := h.lastEvent(); got != string(locomotion.EventDied) {
		t.Fatalf("expected died event, got %q", got)
	}

	frozen := h.controller().State()
	pos := h.transform().Position
	for i := 0; i < 5; i++ {
		h.step(component.Input{MoveZ: 1, LookX: 1, Jump: true})
	}
	if h.controller().State() != frozen || h.transform().Position != pos {
		t.Fatal("expected locomotion to stay frozen while dead")
	}

	h.step(component.Input{Revive: true})
	for _, a := range h.activations() {
		if !a.Active {
			t.Fatalf("expected %s to be enabled after revive", a.Name)
		}
	}
	if got := h.lastEvent(); got != string(locomotion.EventRevived) {
		t.Fatalf("expected revived event, got %q", got)
	}
}

func TestReloadKeepsStateAndSwapsConfig(t *testing.T) {
	h := newHarness(t, &levels.Level{Name: "flat"})
	h.step(component.Input{Jump: true, LookX: 1})
	before := h.controller().State()

	cfg := locomotion.DefaultConfig()
	cfg.SprintSpeed = 40
	r := &ReloadSystem{
		clock: h.loco.Clock(),
		load: func() (*prefabs.PlayerSpec, error) {
			return &prefabs.PlayerSpec{Locomotion: cfg}, nil
		},
	}
	r.reload(h.w)

	ctrl := h.controller()
	if ctrl.Config() != cfg {
		t.Fatalf("expected reloaded config %+v, got %+v", cfg, ctrl.Config())
	}
	if ctrl.State() != before {
		t.Fatalf("expected state to survive reload: %+v -> %+v", before, ctrl.State())
	}

	h.step(component.Input{})
	if ctrl.Now() != 2*testDT {
		t.Fatalf("expected rebuilt controller on the shared clock, got %v", ctrl.Now())
	}
}
