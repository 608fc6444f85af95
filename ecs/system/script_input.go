package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/locomotion/ecs"
	"github.com/milk9111/locomotion/ecs/component"
	"github.com/milk9111/locomotion/prefabs"
)

const scriptInputDispatch = `
__out := input(__tick, __time, __state)
`

// ScriptInput produces input from a tengo script that defines
// `input := func(tick, t, state) { ... }` returning a map with any of
// move_x, move_z, look_x, jump, sprint and revive. state persists between
// ticks. The same script always yields the same input stream.
type ScriptInput struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	dt       float64
	tick     int
}

// LoadScriptInput compiles a script from the prefabs scripts directory.
func LoadScriptInput(name string, dt float64) (*ScriptInput, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script input: load %s: %w", name, err)
	}
	return NewScriptInput(name, src, dt)
}

// NewScriptInput compiles src. dt is the tick length used to derive the
// time argument.
func NewScriptInput(name string, src []byte, dt float64) (*ScriptInput, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), scriptInputDispatch...))
	_ = script.Add("__tick", 0)
	_ = script.Add("__time", 0.0)
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script input: compile %s: %w", name, err)
	}
	return &ScriptInput{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		dt:       dt,
	}, nil
}

// Tick returns how many inputs have been produced.
func (s *ScriptInput) Tick() int {
	if s == nil {
		return 0
	}
	return s.tick
}

// Next runs the script for the next tick.
func (s *ScriptInput) Next() (component.Input, error) {
	if s == nil || s.compiled == nil {
		return component.Input{}, fmt.Errorf("script input: nil runtime")
	}
	tick := s.tick
	s.tick++

	if err := s.compiled.Set("__tick", tick); err != nil {
		return component.Input{}, err
	}
	if err := s.compiled.Set("__time", float64(tick)*s.dt); err != nil {
		return component.Input{}, err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return component.Input{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return component.Input{}, fmt.Errorf("script input: %s tick %d: %w", s.name, tick, err)
	}

	out := s.compiled.Get("__out").Map()
	if out == nil {
		return component.Input{}, fmt.Errorf("script input: %s tick %d: input must return a map", s.name, tick)
	}
	return component.Input{
		MoveX:  clampAxis(asFloat(out["move_x"])),
		MoveZ:  clampAxis(asFloat(out["move_z"])),
		LookX:  clampAxis(asFloat(out["look_x"])),
		Jump:   asBool(out["jump"]),
		Sprint: asBool(out["sprint"]),
		Revive: asBool(out["revive"]),
	}, nil
}

// ScriptInputSystem feeds every Input component from a ScriptInput. A
// script error zeroes input for that tick and is logged once.
type ScriptInputSystem struct {
	script *ScriptInput
	failed bool
}

func NewScriptInputSystem(script *ScriptInput) *ScriptInputSystem {
	return &ScriptInputSystem{script: script}
}

func (s *ScriptInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	in, err := s.script.Next()
	if err != nil {
		if !s.failed {
			log.Printf("script input: %v", err)
			s.failed = true
		}
		in = component.Input{}
	}
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = in
	})
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case float64:
		return b != 0
	}
	return false
}

func clampAxis(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
