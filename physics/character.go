package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/locomotion/common"
)

const (
	maxSlideIterations = 4
	slideSkin          = 1e-3
	minSlideDistance   = 1e-6
)

// CharacterBody is a kinematic capsule that resolves requested
// displacement against a World: collide-and-slide against walls and tall
// platforms on the ground plane, then a vertical pass against the floor and platform tops.
// Ground contact is recorded during Move and reported until the next Move.
type CharacterBody struct {
	world *World

	position common.Vec3
	radius   float64
	step     float64

	grounded bool
	hitWall  bool
}

// NewCharacterBody places a body of the given radius at position. step is
// the tallest ledge the body climbs without jumping.
func NewCharacterBody(world *World, position common.Vec3, radius, step float64) *CharacterBody {
	b := &CharacterBody{
		world:    world,
		position: position,
		radius:   radius,
		step:     step,
	}
	support := world.SupportHeight(position.X, position.Z, position.Y, step)
	if position.Y <= support {
		b.position.Y = support
		b.grounded = true
	}
	return b
}

// Move applies displacement, sliding along walls and landing on surfaces.
func (b *CharacterBody) Move(displacement common.Vec3) {
	if b == nil {
		return
	}
	b.hitWall = false

	from := cp.Vector{X: b.position.X, Y: b.position.Z}
	to := b.slide(from, cp.Vector{X: displacement.X, Y: displacement.Z})
	b.position.X = to.X
	b.position.Z = to.Y

	y := b.position.Y + displacement.Y
	support := b.world.SupportHeight(b.position.X, b.position.Z, b.position.Y, b.step)
	if y <= support && displacement.Y <= 0 {
		y = support
		b.grounded = true
	} else {
		b.grounded = false
	}
	b.position.Y = y
}

// IsGrounded reports contact as of the last Move.
func (b *CharacterBody) IsGrounded() bool {
	return b != nil && b.grounded
}

// HitWall reports whether the last Move was stopped by geometry.
func (b *CharacterBody) HitWall() bool {
	return b != nil && b.hitWall
}

func (b *CharacterBody) Position() common.Vec3 {
	if b == nil {
		return common.Vec3{}
	}
	return b.position
}

// Teleport moves the body without collision and re-evaluates contact.
func (b *CharacterBody) Teleport(position common.Vec3) {
	if b == nil {
		return
	}
	b.position = position
	support := b.world.SupportHeight(position.X, position.Z, position.Y, b.step)
	b.grounded = position.Y <= support
	if b.grounded {
		b.position.Y = support
	}
}

func (b *CharacterBody) Radius() float64 {
	if b == nil {
		return 0
	}
	return b.radius
}

func (b *CharacterBody) slide(pos, delta cp.Vector) cp.Vector {
	if b.world.Space() == nil {
		return pos.Add(delta)
	}
	y := b.position.Y
	for i := 0; i < maxSlideIterations; i++ {
		delta = b.clip(pos, delta)
		dist := delta.Length()
		if dist < minSlideDistance {
			break
		}
		hit, ok := b.world.Sweep(pos, delta, b.radius, y, b.step)
		if !ok {
			return pos.Add(delta)
		}
		b.hitWall = true

		travel := math.Max(hit.Alpha*dist-slideSkin, 0)
		pos = pos.Add(delta.Mult(travel / dist))

		remaining := delta.Mult(1 - hit.Alpha)
		delta = remaining.Sub(hit.Normal.Mult(remaining.Dot(hit.Normal)))
	}
	return pos
}

// clip drops the parts of delta that push further into shapes the body
// already touches. Sweeps ignore faces the circle starts behind.
func (b *CharacterBody) clip(pos, delta cp.Vector) cp.Vector {
	for _, n := range b.world.Contacts(pos, b.radius, b.position.Y, b.step) {
		if into := delta.Dot(n); into < 0 {
			delta = delta.Sub(n.Mult(into))
			b.hitWall = true
		}
	}
	return delta
}
