// Package locomotion turns per-tick input into character velocity, jumps and
// yaw. Collision and ground detection are delegated to a MovementPrimitive.
package locomotion

import "github.com/milk9111/locomotion/common"

// GroundedFallSpeed is the vertical velocity a grounded character rests at.
// Keeping a small downward push holds the ground contact stable.
const GroundedFallSpeed = -0.3

// State is the controller's mutable locomotion state. Only Velocity.Y
// survives between ticks; the horizontal components are rebuilt from input.
type State struct {
	Velocity            common.Vec3
	DoubleJumpAvailable bool
	CoyoteDeadline      float64
	Yaw                 float64
}

// Bindings are the collaborators a controller drives. Movement is required;
// the rest may be left nil.
type Bindings struct {
	Movement    MovementPrimitive
	Input       InputSource
	Health      HealthStatus
	Activation  []Activatable
	Orientation Orientation
}

// Option customises a controller at construction.
type Option func(*Controller)

// WithClock replaces the built-in step clock. The caller is then
// responsible for advancing time.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
			c.step = nil
		}
	}
}

// WithState seeds the controller with previously captured state. It wins
// over the yaw read from Orientation.
func WithState(s State) Option {
	return func(c *Controller) {
		c.state = s
		c.seeded = true
	}
}

// WithEvents registers a sink for jump and liveness events.
func WithEvents(sink EventSink) Option {
	return func(c *Controller) {
		c.events = sink
	}
}

// Controller is the locomotion state machine. It is not safe for concurrent
// use; the host must call Tick from a single goroutine.
type Controller struct {
	cfg      Config
	bindings Bindings
	state    State

	clock  Clock
	step   *ManualClock
	events EventSink

	inert  bool
	seeded bool
	dead   bool
}

// New binds a controller to its collaborators. When the movement primitive
// is missing it returns an inert controller together with a
// *ConfigurationError; Tick on that controller does nothing.
func New(cfg Config, b Bindings, opts ...Option) (*Controller, error) {
	step := &ManualClock{}
	c := &Controller{
		cfg:      cfg,
		bindings: b,
		clock:    step,
		step:     step,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if !c.seeded && b.Orientation != nil {
		c.state.Yaw = b.Orientation.Yaw()
	}
	// A character bound while already dead does not die again on its
	// first tick.
	c.dead = b.Health != nil && b.Health.CurrentHealth() <= 0
	if b.Movement == nil {
		c.inert = true
		return c, &ConfigurationError{Missing: "movement primitive"}
	}
	return c, nil
}

// Config returns the controller's tuning.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// State returns a copy of the current locomotion state.
func (c *Controller) State() State {
	if c == nil {
		return State{}
	}
	return c.state
}

// Inert reports whether construction failed and Tick is a no-op.
func (c *Controller) Inert() bool {
	return c == nil || c.inert
}

// Now returns the controller clock reading.
func (c *Controller) Now() float64 {
	if c == nil || c.clock == nil {
		return 0
	}
	return c.clock.Now()
}

// Tick advances the controller by dt seconds. dt is not checked; zero or
// negative values yield zero or reversed motion.
func (c *Controller) Tick(dt float64) {
	if c == nil {
		return
	}
	if c.step != nil {
		defer c.step.Advance(dt)
	}
	if c.inert {
		return
	}

	now := c.clock.Now()
	if !c.updateLiveness(now) {
		return
	}

	in := c.snapshot()
	speed := c.cfg.speed(in.Sprint)
	grounded := c.bindings.Movement.IsGrounded()

	horizontal := common.Vec3{X: in.MoveX * speed, Z: in.MoveZ * speed}.RotateYaw(c.state.Yaw)
	c.state.Velocity.X = horizontal.X
	c.state.Velocity.Z = horizontal.Z

	if grounded {
		c.state.DoubleJumpAvailable = true
		c.state.CoyoteDeadline = now + c.cfg.JumpLeniencySeconds
		c.state.Velocity.Y = 0
		if in.Jump {
			c.state.Velocity.Y = c.cfg.JumpPower
			c.emit(EventGroundJump, now)
		}
	} else if in.Jump {
		switch {
		case now < c.state.CoyoteDeadline:
			c.state.Velocity.Y = c.cfg.JumpPower
			c.emit(EventCoyoteJump, now)
		case c.state.DoubleJumpAvailable:
			c.state.Velocity.Y = c.cfg.JumpPower
			c.state.DoubleJumpAvailable = false
			c.emit(EventDoubleJump, now)
		}
	}

	c.state.Velocity.Y -= c.cfg.Gravity * dt
	if grounded && c.state.Velocity.Y < 0 {
		c.state.Velocity.Y = GroundedFallSpeed
	}

	c.bindings.Movement.Move(c.state.Velocity.Scale(dt))

	c.state.Yaw += in.LookX * c.cfg.LookSpeed * dt
	if c.bindings.Orientation != nil {
		c.bindings.Orientation.SetYaw(c.state.Yaw)
	}
}

// updateLiveness applies the activation set for this tick and reports
// whether the character is alive. Dead characters keep their state frozen.
func (c *Controller) updateLiveness(now float64) bool {
	alive := c.bindings.Health == nil || c.bindings.Health.CurrentHealth() > 0
	for _, a := range c.bindings.Activation {
		if a != nil {
			a.SetActive(alive)
		}
	}

	switch {
	case !alive && !c.dead:
		c.dead = true
		c.emit(EventDied, now)
	case alive && c.dead:
		c.dead = false
		c.emit(EventRevived, now)
	}
	return alive
}

func (c *Controller) snapshot() InputSnapshot {
	if c.bindings.Input == nil {
		return InputSnapshot{}
	}
	return c.bindings.Input.Snapshot()
}

func (c *Controller) emit(kind EventKind, now float64) {
	if c.events != nil {
		c.events(Event{Kind: kind, Time: now})
	}
}
