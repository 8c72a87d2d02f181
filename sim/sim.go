// Package sim is the locomotion and environment-interaction core: a
// frame-synchronous state machine that reconciles free-form input with an
// analytic collision model against many independent structures. It is
// headless and deterministic — one Step per rendered frame, dt injected,
// no clocks, no rendering, no I/O.
package sim

import (
	"math/rand"

	"github.com/automoto/highrise/gamemath"
)

// Sim owns the character, the structure registry, and the stuck monitor for
// one play session. It is not safe for concurrent use and does not need to
// be: the whole core runs inside the frame update.
type Sim struct {
	params Params
	reg    *Registry
	spawn  gamemath.Vec3

	char    Character
	monitor monitor

	rng    *rand.Rand
	events []Event
}

// New creates a session with the character grounded at spawn. The rng seeds
// the recovery nudge used when no structure is near; tests pass a fixed seed.
func New(params Params, reg *Registry, spawn gamemath.Vec3, rng *rand.Rand) *Sim {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &Sim{
		params: params,
		reg:    reg,
		spawn:  spawn,
		rng:    rng,
	}
	s.Reset()
	return s
}

func (s *Sim) Character() *Character { return &s.char }
func (s *Sim) Registry() *Registry   { return s.reg }
func (s *Sim) Params() Params        { return s.params }

// Reset restores spawn defaults and clears monitor bookkeeping.
func (s *Sim) Reset() {
	s.char.reset(s.spawn)
	s.monitor = monitor{lastPos: s.spawn}
	s.events = s.events[:0]
}

// NearAnchor returns the climbable structure whose anchor the character is
// currently eligible to climb, or nil. Same radius both ways; see the
// resolver docs for the tie-break rules.
func (s *Sim) NearAnchor() *Structure {
	return s.reg.NearestAnchor(s.char.Pos, s.params.AnchorRadius)
}

// Step advances the simulation by dt seconds. Order per frame: manual
// recovery trigger, then either the climb state machine (which
// short-circuits everything else) or integrate-then-resolve, then the stuck
// monitor. The returned slice is reused across calls; consume it before the
// next Step.
func (s *Sim) Step(in Intent, dt float64) []Event {
	s.events = s.events[:0]
	if dt <= 0 {
		return s.events
	}

	recoverPressed := in.Recover && !s.char.recoverWasHeld
	s.char.recoverWasHeld = in.Recover

	if recoverPressed {
		s.manualRecover()
	}

	// Jump bookkeeping stays current in every mode. Jump and climb can share
	// a key binding, so a key held through a whole climb must not read as a
	// fresh press on the first frame after completion.
	if s.char.Mode != ModeClimbing && in.Jump && !s.char.jumpWasHeld {
		s.char.jumpBufferTimer = s.params.JumpBufferTime
	}
	s.char.jumpWasHeld = in.Jump

	if s.char.Mode == ModeClimbing {
		s.stepClimb(in, dt)
		return s.events
	}

	s.maybeStartClimb(in)
	if s.char.Mode == ModeClimbing {
		return s.events
	}

	s.integrate(in, dt)
	s.resolve()
	s.observe(dt)
	return s.events
}

func (s *Sim) emit(kind EventKind, structure *Structure) {
	id := GroundID
	if structure != nil {
		id = structure.ID
	}
	s.events = append(s.events, Event{Kind: kind, Structure: id})
}
