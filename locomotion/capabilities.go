package locomotion

import "github.com/milk9111/locomotion/common"

// InputSnapshot is the per-tick input read from an InputSource. Axis values
// are expected in [-1, 1]; buttons are level-triggered.
type InputSnapshot struct {
	MoveX  float64
	MoveZ  float64
	LookX  float64
	Jump   bool
	Sprint bool
}

// InputSource supplies a fresh snapshot every tick.
type InputSource interface {
	Snapshot() InputSnapshot
}

// MovementPrimitive resolves displacement against the world. IsGrounded
// reports contact as of the end of the previous Move call.
type MovementPrimitive interface {
	Move(displacement common.Vec3)
	IsGrounded() bool
}

// HealthStatus exposes the current health value. Anything at or below zero
// counts as dead.
type HealthStatus interface {
	CurrentHealth() float64
}

// Activatable is an entity that is switched on and off with liveness.
type Activatable interface {
	SetActive(active bool)
}

// Orientation receives the controller's yaw in degrees. Yaw is read once
// at construction; after that the controller owns it and only ever writes.
type Orientation interface {
	Yaw() float64
	SetYaw(degrees float64)
}

// Clock reports the current simulation time in seconds.
type Clock interface {
	Now() float64
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	T float64
}

func (c *ManualClock) Now() float64 {
	if c == nil {
		return 0
	}
	return c.T
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	if c == nil {
		return
	}
	c.T += dt
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t float64) {
	if c == nil {
		return
	}
	c.T = t
}
