package prefabs

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/locomotion/locomotion"
	"gopkg.in/yaml.v3"
)

// EnvPrefix scopes the environment overrides for locomotion tuning, e.g.
// LOCOMOTION_SPRINT_SPEED=30.
const EnvPrefix = "LOCOMOTION_"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Radius     float64 `yaml:"radius"`
	StepHeight float64 `yaml:"step_height"`
}

type PlayerSpec struct {
	Name             string            `yaml:"name"`
	Locomotion       locomotion.Config `yaml:"locomotion"`
	Collider         ColliderSpec      `yaml:"collider"`
	Health           float64           `yaml:"health"`
	DisableWhileDead []string          `yaml:"disable_while_dead"`
}

// LoadPlayerSpec reads player.yaml and applies environment overrides on
// top of the locomotion tuning.
func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(&spec.Locomotion); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ApplyEnv overrides fields of cfg from LOCOMOTION_* variables. Unset
// variables leave the field alone.
func ApplyEnv(cfg *locomotion.Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("prefabs: parse env: %w", err)
	}
	return nil
}
