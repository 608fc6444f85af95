package locomotion

// Config is the immutable tuning of a controller. Values are not validated;
// zero or negative numbers simply produce degenerate motion.
type Config struct {
	BaseSpeed           float64 `yaml:"base_speed" env:"BASE_SPEED"`
	SprintSpeed         float64 `yaml:"sprint_speed" env:"SPRINT_SPEED"`
	LookSpeed           float64 `yaml:"look_speed" env:"LOOK_SPEED"`
	JumpPower           float64 `yaml:"jump_power" env:"JUMP_POWER"`
	Gravity             float64 `yaml:"gravity" env:"GRAVITY"`
	JumpLeniencySeconds float64 `yaml:"jump_leniency_seconds" env:"JUMP_LENIENCY_SECONDS"`
}

// DefaultConfig returns the stock character tuning.
func DefaultConfig() Config {
	return Config{
		BaseSpeed:           15,
		SprintSpeed:         25,
		LookSpeed:           60,
		JumpPower:           8,
		Gravity:             9.81,
		JumpLeniencySeconds: 0.1,
	}
}

// speed picks the movement speed for this tick. Sprint replaces the base
// speed outright rather than scaling it.
func (c Config) speed(sprint bool) float64 {
	if sprint {
		return c.SprintSpeed
	}
	return c.BaseSpeed
}
