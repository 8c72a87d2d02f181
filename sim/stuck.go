package sim

import (
	"math"

	"github.com/automoto/highrise/gamemath"
)

// monitor is the rolling bookkeeping behind the stuck detector. Not
// persisted; reset with the session.
type monitor struct {
	lastPos  gamemath.Vec3
	idleTime float64
	grace    float64
}

func (m *monitor) suppress(duration float64, pos gamemath.Vec3) {
	m.grace = duration
	m.idleTime = 0
	m.lastPos = pos
}

// problem classifies a position the character has been idling at.
type problem int

const (
	notStuck problem = iota
	stuckUnderground
	stuckMidair
	stuckOffAttachment
	stuckWedged
	stuckOutOfBounds
)

// observe runs once per frame after collision resolution (never while
// climbing — the climb has its own timeout). When displacement stays under
// the threshold past the patience window, the position is classified and, if
// problematic, the character is relocated.
func (s *Sim) observe(dt float64) {
	p := &s.params
	m := &s.monitor
	c := &s.char

	if m.grace > 0 {
		m.grace = math.Max(0, m.grace-dt)
		m.lastPos = c.Pos
		return
	}

	moved := c.Pos.Sub(m.lastPos).Len()
	m.lastPos = c.Pos
	if moved > p.StuckDistance {
		m.idleTime = 0
		return
	}

	m.idleTime += dt
	if m.idleTime < p.StuckPatience {
		return
	}

	if s.classify() == notStuck {
		// Standing still because the player is idle. Reset and keep watching.
		m.idleTime = 0
		return
	}
	s.recover()
}

func (s *Sim) classify() problem {
	p := &s.params
	c := &s.char

	switch {
	case c.Pos.Y < -0.05:
		return stuckUnderground
	case math.Abs(c.Pos.X) > p.WorldBound || math.Abs(c.Pos.Z) > p.WorldBound:
		return stuckOutOfBounds
	case c.Attached != nil:
		if math.Abs(c.Pos.Y-c.Attached.LandingHeight(*p)) > p.AttachTolerance {
			return stuckOffAttachment
		}
		return notStuck
	case c.Pos.Y > p.HighAirHeight:
		return stuckMidair
	case c.Pos.Y <= p.LandingOffset && c.Vel.Len() < 0.05:
		// At ground level, stationary, nothing nearby to stand against:
		// likely wedged in unseen geometry.
		if s.nearAnyFootprint(p.GroundNearMargin) == nil {
			return stuckWedged
		}
		return notStuck
	default:
		return notStuck
	}
}

func (s *Sim) nearAnyFootprint(margin float64) *Structure {
	for i := 0; i < s.reg.Len(); i++ {
		st := s.reg.At(i)
		if gamemath.HorizDist(s.char.Pos, st.Pos) <= st.FootprintRadius+margin {
			return st
		}
	}
	return nil
}

// recover teleports the character to a heuristically safe position: the
// nearest structure top when the current height is plausible for it,
// otherwise ground level nudged away from nearby footprints.
func (s *Sim) recover() {
	p := &s.params
	c := &s.char

	if st := s.reg.Nearest(c.Pos, p.RecoverRadius); st != nil &&
		math.Abs(c.Pos.Y-st.LandingHeight(*p)) <= p.RecoverTolerance {
		c.Pos.X = st.Pos.X
		c.Pos.Z = st.Pos.Z
		c.Pos.Y = st.LandingHeight(*p)
		c.Attached = st
	} else {
		s.relocateToGround()
	}

	c.Vel = gamemath.Vec3{}
	c.Mode = ModeGrounded
	c.Climb = nil
	s.clampToBounds()
	s.monitor.suppress(p.GracePeriod, c.Pos)
	s.emit(EventRecovered, c.Attached)
}

// relocateToGround drops the character to ground level, pushed along the
// averaged outward direction from every nearby footprint, or by a random
// offset when nothing is near.
func (s *Sim) relocateToGround() {
	p := &s.params
	c := &s.char

	var away gamemath.Vec3
	for i := 0; i < s.reg.Len(); i++ {
		st := s.reg.At(i)
		if gamemath.HorizDist(c.Pos, st.Pos) <= st.FootprintRadius+p.GroundNearMargin {
			away = away.Add(c.Pos.Sub(st.Pos).HorizNormalize())
		}
	}
	if away.HorizLen() > 1e-6 {
		away = away.HorizNormalize()
	} else {
		angle := s.rng.Float64() * 2 * math.Pi
		away = gamemath.Vec3{X: math.Cos(angle), Z: math.Sin(angle)}
	}

	c.Pos.X += away.X * p.RecoverNudge
	c.Pos.Z += away.Z * p.RecoverNudge
	c.Pos.Y = 0
	c.Attached = nil
}

// manualRecover is the player-triggered variant: while climbing it forces
// climb completion; otherwise it relocates immediately, without waiting for
// the patience window.
func (s *Sim) manualRecover() {
	if s.char.Mode == ModeClimbing {
		s.completeClimb()
		return
	}
	s.recover()
}
