package sim

import (
	"math"

	"github.com/automoto/highrise/gamemath"
)

// integrate converts the frame's intent plus gravity into a velocity and
// position update. It performs no collision; resolve always runs afterward
// in the same frame.
func (s *Sim) integrate(in Intent, dt float64) {
	p := &s.params
	c := &s.char

	// Jump edge detection and buffering happen in Step, which runs every
	// frame; integrate only consumes the buffer.

	// Coyote window: grounded state persists briefly after leaving a surface.
	if c.Mode == ModeGrounded {
		c.coyoteTimer = p.CoyoteTime
	}

	if c.jumpBufferTimer > 0 && (c.Mode == ModeGrounded || c.coyoteTimer > 0) {
		s.jump()
	}

	// Timers decay after the consume check so a press on the last frame of a
	// window still counts.
	if c.Mode != ModeGrounded {
		c.coyoteTimer = math.Max(0, c.coyoteTimer-dt)
	}
	c.jumpBufferTimer = math.Max(0, c.jumpBufferTimer-dt)
	c.exitCooldown = math.Max(0, c.exitCooldown-dt)

	// Horizontal target: diagonal-normalized intent rotated into the
	// camera's horizontal facing.
	move := gamemath.Vec3{X: in.MoveX, Z: in.MoveZ}
	if l := move.HorizLen(); l > 1 {
		move = move.Scale(1 / l)
	}
	move = move.RotateY(in.CameraYaw)
	hasIntent := move.HorizLen() > 1e-6

	switch {
	case c.Mode == ModeGrounded && hasIntent:
		target := move.Scale(p.GroundSpeed)
		blend := gamemath.BlendFactor(p.GroundBlend, dt)
		c.Vel.X += (target.X - c.Vel.X) * blend
		c.Vel.Z += (target.Z - c.Vel.Z) * blend
	case c.Mode == ModeGrounded:
		damp := gamemath.DampFactor(p.Friction, dt)
		c.Vel.X *= damp
		c.Vel.Z *= damp
	case hasIntent:
		// Reduced air control: a fraction of the target is added directly,
		// not blended.
		target := move.Scale(p.AirSpeed)
		c.Vel.X += target.X * p.AirControl * dt
		c.Vel.Z += target.Z * p.AirControl * dt
		if hl := c.Vel.HorizLen(); hl > p.GroundSpeed {
			scale := p.GroundSpeed / hl
			c.Vel.X *= scale
			c.Vel.Z *= scale
		}
	}

	// Gravity, clamped to terminal fall speed.
	c.Vel.Y -= p.Gravity * dt
	if c.Vel.Y < -p.MaxFallSpeed {
		c.Vel.Y = -p.MaxFallSpeed
	}

	c.Pos = c.Pos.Add(c.Vel.Scale(dt))

	s.turnToVelocity(dt)
}

// jump consumes the buffered press: fixed upward speed, grounded and
// attachment state cleared, and a short cooldown that prevents re-landing on
// the structure just jumped from.
func (s *Sim) jump() {
	p := &s.params
	c := &s.char

	c.jumpBufferTimer = 0
	c.coyoteTimer = 0
	c.Vel.Y = p.JumpSpeed
	c.Mode = ModeAirborne
	c.exitCooldown = p.ExitCooldown
	if c.Attached != nil {
		s.emit(EventLeftStructure, c.Attached)
		c.Attached = nil
	}
	s.emit(EventJumped, nil)
}

// turnToVelocity rotates facing yaw toward the movement direction. Cosmetic,
// but kept in the core so facing stays consistent with the resolver's
// velocity-direction checks.
func (s *Sim) turnToVelocity(dt float64) {
	c := &s.char
	if c.Vel.HorizLen() < 0.1 {
		return
	}
	rate := s.params.TurnRateAir
	if c.Mode == ModeGrounded {
		rate = s.params.TurnRateGround
	}
	target := math.Atan2(c.Vel.X, c.Vel.Z)
	c.Yaw = gamemath.TurnToward(c.Yaw, target, rate*dt)
}
