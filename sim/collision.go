package sim

import (
	"math"

	"github.com/automoto/highrise/gamemath"
)

// resolve mutates the tentative position/velocity from integrate into a
// physically consistent state. Rule precedence, per structure:
//
//  1. maintain an existing attachment
//  2. fresh landing on a structure top
//  3. side pushback off a footprint
//  4. rooftop-to-rooftop catch (extended radius and band)
//  5. ground collision (only when unattached)
//  6. play-area boundary clamp
//
// Structures are evaluated in registry order; the first structure that
// satisfies rule 1 or 2 wins the frame. Side pushback is cumulative — several
// structures can push in the same frame. This ordering is the deterministic
// tie-break for characters near multiple structures at once.
func (s *Sim) resolve() {
	c := &s.char

	s.maintainAttachment()
	if c.Attached == nil {
		s.tryLand()
	}
	s.pushFromSides()
	if c.Attached == nil {
		s.collideGround()
	}
	s.clampToBounds()
}

// maintainAttachment keeps the character pinned to its structure's landing
// height while it stays within a generous radius and is not actively jumping
// off; otherwise the attachment is released.
func (s *Sim) maintainAttachment() {
	p := &s.params
	c := &s.char
	st := c.Attached
	if st == nil {
		return
	}

	within := gamemath.HorizDist(c.Pos, st.Pos) <= st.FootprintRadius+p.MaintainMargin
	if within && c.Vel.Y <= 0 {
		c.Pos.Y = st.LandingHeight(*p)
		c.Vel.Y = 0
		c.Mode = ModeGrounded
		return
	}

	c.Attached = nil
	s.emit(EventLeftStructure, st)
	if c.Vel.Y > 0 || c.Pos.Y > p.LandingOffset {
		c.Mode = ModeAirborne
	}
}

// tryLand checks every structure in registry order for a fresh landing
// (rule 2) or a rooftop-to-rooftop catch (rule 4) and attaches to the first
// match.
func (s *Sim) tryLand() {
	p := &s.params
	c := &s.char

	if c.Vel.Y > 0 || c.exitCooldown > 0 {
		return
	}

	for i := 0; i < s.reg.Len(); i++ {
		st := s.reg.At(i)
		d := gamemath.HorizDist(c.Pos, st.Pos)
		landH := st.LandingHeight(*p)

		if d <= st.FootprintRadius+p.LandMargin && math.Abs(c.Pos.Y-landH) <= p.LandBand {
			s.land(st)
			return
		}

		// Rooftop-to-rooftop: forgiving radius and band, but the character
		// must actually be moving toward the structure.
		if c.Mode == ModeAirborne &&
			d <= st.FootprintRadius+p.JumpDetectMargin &&
			math.Abs(c.Pos.Y-landH) <= p.JumpDetectBand {
			toward := st.Pos.Sub(c.Pos).HorizNormalize()
			if gamemath.HorizDot(c.Vel, toward) > 0 {
				s.land(st)
				return
			}
		}
	}
}

func (s *Sim) land(st *Structure) {
	c := &s.char
	c.Pos.Y = st.LandingHeight(s.params)
	c.Vel.Y = 0
	c.Mode = ModeGrounded
	c.Attached = st
	s.emit(EventLanded, st)
}

// pushFromSides pushes the character radially out of every footprint it
// overlaps below the landing band, dampening only the inward velocity
// component so tangential motion survives the hit.
func (s *Sim) pushFromSides() {
	p := &s.params
	c := &s.char

	for i := 0; i < s.reg.Len(); i++ {
		st := s.reg.At(i)
		if st == c.Attached {
			continue
		}
		d := gamemath.HorizDist(c.Pos, st.Pos)
		if d >= st.FootprintRadius {
			continue
		}
		// Inside the footprint but above the top (within the landing band)
		// is a landing concern, not a wall hit.
		if c.Pos.Y >= st.LandingHeight(*p)-p.LandBand {
			continue
		}

		out := c.Pos.Sub(st.Pos).HorizNormalize()
		if out.HorizLen() == 0 {
			out = gamemath.Vec3{X: 1} // dead center; pick an arbitrary exit
		}
		c.Pos.X = st.Pos.X + out.X*st.FootprintRadius
		c.Pos.Z = st.Pos.Z + out.Z*st.FootprintRadius

		// Split horizontal velocity into radial and tangential parts and
		// dampen only the inward radial component.
		radial := gamemath.HorizDot(c.Vel, out)
		if radial < 0 {
			tangX := c.Vel.X - radial*out.X
			tangZ := c.Vel.Z - radial*out.Z
			radial *= p.SidePushDamp
			c.Vel.X = tangX + radial*out.X
			c.Vel.Z = tangZ + radial*out.Z
		}
	}
}

// collideGround clamps a falling character to ground level. Never evaluated
// while attached: structure tops own the supported state there.
func (s *Sim) collideGround() {
	c := &s.char
	if c.Vel.Y > 0 {
		return
	}
	if c.Pos.Y <= 0 {
		c.Pos.Y = 0
		c.Vel.Y = 0
		if c.Mode != ModeGrounded {
			c.Mode = ModeGrounded
			s.emit(EventLanded, nil)
		}
	} else if c.Mode == ModeGrounded && c.Attached == nil && c.Pos.Y > s.params.LandingOffset {
		// Walked off an edge with nothing underneath.
		c.Mode = ModeAirborne
	}
}

func (s *Sim) clampToBounds() {
	b := s.params.WorldBound
	c := &s.char
	c.Pos.X = gamemath.Clamp(c.Pos.X, -b, b)
	c.Pos.Z = gamemath.Clamp(c.Pos.Z, -b, b)
}
