package sim

import (
	"github.com/automoto/highrise/gamemath"
)

// Climb state machine. While a session exists the integrator and resolver
// are suspended: velocity is pinned to zero and position is driven only by
// the climb progression below.

// maybeStartClimb enters a climb when the climb control is held, the
// character is within the anchor radius of a climbable structure, and is not
// already above that structure's landing height.
func (s *Sim) maybeStartClimb(in Intent) {
	if !in.Climb {
		return
	}
	c := &s.char
	st := s.NearAnchor()
	if st == nil {
		return
	}
	target := st.LandingHeight(s.params)
	if c.Pos.Y >= target {
		return
	}

	if c.Attached != nil {
		s.emit(EventLeftStructure, c.Attached)
		c.Attached = nil
	}
	c.Vel = gamemath.Vec3{}
	// Buffered presses do not survive the climb; the buffer would otherwise
	// sit frozen for the whole ascent and fire at the rooftop.
	c.jumpBufferTimer = 0
	c.coyoteTimer = 0
	c.Pos.X = st.Anchor.X
	c.Pos.Z = st.Anchor.Z
	c.Mode = ModeClimbing
	c.Climb = &ClimbSession{Structure: st, TargetHeight: target}
	s.emit(EventClimbStarted, st)
}

// stepClimb advances an active session by one frame: ascend at the climb
// rate, re-snap to the anchor to kill horizontal drift, and check the three
// exits — completion, abort, timeout.
func (s *Sim) stepClimb(in Intent, dt float64) {
	c := &s.char
	session := c.Climb

	if !in.Climb {
		// Abort: no teleport. The character stays where it is, unsupported,
		// and normal physics resumes next frame.
		c.Climb = nil
		c.Mode = ModeAirborne
		return
	}

	session.Elapsed += dt
	c.Pos.Y += s.params.ClimbRate * dt
	c.Pos.X = session.Structure.Anchor.X
	c.Pos.Z = session.Structure.Anchor.Z

	if c.Pos.Y >= session.TargetHeight {
		s.completeClimb()
		return
	}
	if session.Elapsed > s.params.ClimbTimeout {
		// Forward-progress guarantee: a climb never leaves the character
		// suspended indefinitely. Force completion and suppress the stuck
		// monitor for the grace period, like any other recovery teleport.
		s.completeClimb()
	}
}

// completeClimb places the character on top of the climbed structure, a safe
// offset inward from the anchor so the landing spot is outside the anchor
// radius and the climb cannot immediately re-trigger.
func (s *Sim) completeClimb() {
	c := &s.char
	st := c.Climb.Structure

	inward := st.Pos.Sub(st.Anchor).HorizNormalize()
	if inward.HorizLen() == 0 {
		inward = gamemath.Vec3{X: 1}
	}
	c.Pos.X = st.Anchor.X + inward.X*s.params.InteriorOffset
	c.Pos.Z = st.Anchor.Z + inward.Z*s.params.InteriorOffset
	c.Pos.Y = st.LandingHeight(s.params)
	c.Vel = gamemath.Vec3{}
	c.Mode = ModeGrounded
	c.Attached = st
	c.Climb = nil

	// The teleport itself looks like "no player-driven displacement".
	s.monitor.suppress(s.params.GracePeriod, c.Pos)
	s.emit(EventClimbFinished, st)
}
