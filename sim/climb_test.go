package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/highrise/gamemath"
)

func TestClimbDuration(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Pos = gamemath.Vec3{X: tower.Anchor.X, Z: tower.Anchor.Z}

	const dt = 1.0 / 60
	s.Step(Intent{Climb: true}, dt)
	if c.Mode != ModeClimbing {
		t.Fatalf("climb did not start near the anchor")
	}

	frames := 0
	for ; frames < 1000 && c.Mode == ModeClimbing; frames++ {
		s.Step(Intent{Climb: true}, dt)
	}

	want := tower.LandingHeight(s.Params()) / s.Params().ClimbRate / dt
	if math.Abs(float64(frames)-want) > 1.5 {
		t.Fatalf("climb took %d frames, want %v +- 1", frames, want)
	}
	if c.Attached != tower {
		t.Fatalf("not attached to the climbed structure after completion")
	}
	if c.Pos.Y != tower.LandingHeight(s.Params()) {
		t.Fatalf("completion height %v, want %v", c.Pos.Y, tower.LandingHeight(s.Params()))
	}
}

func TestClimbPinsVelocityAndAnchor(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Pos = gamemath.Vec3{X: tower.Anchor.X + 0.5, Z: 0.3}
	c.Vel = gamemath.Vec3{X: 4, Z: -2}

	const dt = 1.0 / 60
	s.Step(Intent{Climb: true}, dt)
	for i := 0; i < 20; i++ {
		// Move intent during a climb must not cause horizontal drift.
		s.Step(Intent{Climb: true, MoveX: 1, MoveZ: 1}, dt)
		if c.Vel.Len() != 0 {
			t.Fatalf("velocity %v not pinned to zero mid-climb", c.Vel)
		}
		if c.Pos.X != tower.Anchor.X || c.Pos.Z != tower.Anchor.Z {
			t.Fatalf("drifted off the anchor mid-climb: %v", c.Pos)
		}
	}
}

func TestClimbAbortResumesFalling(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Pos = gamemath.Vec3{X: tower.Anchor.X}

	const dt = 1.0 / 60
	s.Step(Intent{Climb: true}, dt)
	for i := 0; i < 30; i++ {
		s.Step(Intent{Climb: true}, dt)
	}
	heightAtRelease := c.Pos.Y

	// Release the climb control before reaching the top.
	s.Step(Intent{}, dt)
	if c.Climb != nil {
		t.Fatalf("climb session survived the abort")
	}
	if c.Mode != ModeAirborne {
		t.Fatalf("mode %v after abort, want airborne", c.Mode)
	}

	// Velocity is no longer pinned: the character falls within a frame.
	s.Step(Intent{}, dt)
	if c.Vel.Y >= 0 || c.Pos.Y >= heightAtRelease {
		t.Fatalf("not falling after abort: vel.Y=%v y=%v", c.Vel.Y, c.Pos.Y)
	}
}

func TestClimbIgnoredWhenAboveTarget(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Attached = tower
	c.Pos = gamemath.Vec3{X: tower.Anchor.X, Y: tower.LandingHeight(s.Params())}

	s.Step(Intent{Climb: true}, 1.0/60)
	if c.Mode == ModeClimbing {
		t.Fatalf("climb started while already at the target height")
	}
}

func TestClimbTimeoutForcesCompletion(t *testing.T) {
	p := DefaultParams()
	p.ClimbTimeout = 0.5
	tall := Structure{
		Pos:             gamemath.Vec3{X: 10},
		Height:          100,
		FootprintRadius: 3,
		Climbable:       true,
		Anchor:          gamemath.Vec3{X: 6.5},
	}
	s := New(p, NewRegistry([]Structure{tall}), gamemath.Vec3{X: 6.5}, rand.New(rand.NewSource(1)))
	c := s.Character()

	const dt = 1.0 / 60
	for i := 0; i < 60; i++ {
		s.Step(Intent{Climb: true}, dt)
	}

	if c.Mode == ModeClimbing {
		t.Fatalf("climb still running past the timeout")
	}
	if c.Attached == nil || c.Pos.Y != tall.Height+p.LandingOffset {
		t.Fatalf("timeout did not force completion: y=%v attached=%v", c.Pos.Y, c.Attached)
	}
}

func TestClimbCompletionPlacesInward(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Pos = gamemath.Vec3{X: tower.Anchor.X}

	const dt = 1.0 / 60
	for i := 0; i < 200 && c.Attached == nil; i++ {
		s.Step(Intent{Climb: true}, dt)
	}

	// Placement is offset from the anchor toward the structure interior.
	if c.Pos.X <= tower.Anchor.X {
		t.Fatalf("completion placed at or outside the anchor: %v", c.Pos)
	}
	if d := gamemath.HorizDist(c.Pos, tower.Pos); d > tower.FootprintRadius {
		t.Fatalf("completion placed off the footprint: dist %v", d)
	}
}

func TestClimbSharedKeyHeldThroughCompletion(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Pos = gamemath.Vec3{X: tower.Anchor.X, Z: tower.Anchor.Z}

	// Jump and climb can share a key binding, so both intents arrive held
	// for the entire climb.
	held := Intent{Jump: true, Climb: true}
	const dt = 1.0 / 60
	s.Step(held, dt)
	if c.Mode != ModeClimbing {
		t.Fatalf("climb did not start")
	}
	for i := 0; i < 1000 && c.Mode == ModeClimbing; i++ {
		s.Step(held, dt)
	}
	if c.Attached != tower {
		t.Fatalf("not attached after completion")
	}

	// The key is still down. No release happened, so nothing may jump.
	for i := 0; i < 30; i++ {
		for _, ev := range s.Step(held, dt) {
			if ev.Kind == EventJumped {
				t.Fatalf("held key read as a fresh press after climb completion")
			}
		}
		if c.Attached != tower || c.Vel.Y != 0 {
			t.Fatalf("left the rooftop under a held key: vel.Y=%v attached=%v", c.Vel.Y, c.Attached)
		}
	}
}

func TestClimbDropsBufferedJumpPress(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Pos = gamemath.Vec3{X: tower.Anchor.X, Z: tower.Anchor.Z, Y: 1}
	c.Mode = ModeAirborne

	const dt = 1.0 / 60
	// An airborne press is buffered, not consumed.
	s.Step(Intent{Jump: true}, dt)
	if c.jumpBufferTimer == 0 {
		t.Fatalf("airborne jump press was not buffered")
	}

	// Starting a climb discards the buffer; timers freeze during the ascent
	// and a surviving press would fire at the rooftop.
	s.Step(Intent{Climb: true}, dt)
	if c.Mode != ModeClimbing {
		t.Fatalf("climb did not start")
	}
	if c.jumpBufferTimer != 0 {
		t.Fatalf("buffered jump press survived into the climb")
	}
}

func TestClimbCatchesWhileFalling(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Pos = gamemath.Vec3{X: tower.Anchor.X, Z: tower.Anchor.Z, Y: 2}
	c.Mode = ModeAirborne
	c.Vel = gamemath.Vec3{Y: -6}

	// No grounded requirement on climb start: falling past the anchor with
	// the control held grabs on.
	s.Step(Intent{Climb: true}, 1.0/60)
	if c.Mode != ModeClimbing {
		t.Fatalf("falling past the anchor with the control held did not grab")
	}
	if c.Vel != (gamemath.Vec3{}) {
		t.Fatalf("grab did not zero velocity: %v", c.Vel)
	}
}

func TestClimbStartSuppressesPhysics(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Pos = gamemath.Vec3{X: tower.Anchor.X}

	var started bool
	for _, ev := range s.Step(Intent{Climb: true}, 1.0/60) {
		if ev.Kind == EventClimbStarted && ev.Structure == tower.ID {
			started = true
		}
	}
	if !started {
		t.Fatalf("no climb-started event")
	}
	if c.Vel != (gamemath.Vec3{}) {
		t.Fatalf("velocity %v on climb entry, want zero", c.Vel)
	}
}
