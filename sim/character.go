package sim

import (
	"github.com/automoto/highrise/gamemath"
)

// Mode is the character's locomotion mode. Exactly one applies per frame:
// Climbing suspends the integrator and the collision resolver entirely.
type Mode int

const (
	ModeGrounded Mode = iota
	ModeAirborne
	ModeClimbing
)

func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeClimbing:
		return "climbing"
	}
	return "unknown"
}

// ClimbSession is the transient state of an in-progress climb. The structure
// is captured at climb start and never re-derived, so completion is
// unambiguous even when several structures share a height or sit close
// together.
type ClimbSession struct {
	Structure    *Structure
	TargetHeight float64
	Elapsed      float64
}

// Character is the single controllable entity. All timers live here so a
// test can drive the character with injected intents and dt values and
// assert the resulting state without a clock.
type Character struct {
	Pos gamemath.Vec3
	Vel gamemath.Vec3
	Yaw float64 // facing, radians around Y

	Mode     Mode
	Attached *Structure    // non-nil only while standing on a structure top
	Climb    *ClimbSession // non-nil only while Mode == ModeClimbing

	coyoteTimer     float64
	jumpBufferTimer float64
	exitCooldown    float64

	jumpWasHeld    bool
	recoverWasHeld bool
}

// OnGround reports whether the character is vertically supported, by the
// ground plane or a structure top.
func (c *Character) OnGround() bool { return c.Mode == ModeGrounded }

// reset restores spawn defaults: position at spawn, velocity zero, grounded,
// attachment and climb cleared.
func (c *Character) reset(spawn gamemath.Vec3) {
	*c = Character{Pos: spawn, Mode: ModeGrounded}
}
