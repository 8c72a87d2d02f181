package sim

import (
	"math"
	"testing"

	"github.com/automoto/highrise/gamemath"
)

func TestLandOnStructureFromAbove(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	c.Mode = ModeAirborne
	c.Pos = gamemath.Vec3{X: 10, Y: 6}
	c.Vel.Y = -5

	const dt = 1.0 / 60
	for i := 0; i < 120 && c.Attached == nil; i++ {
		s.Step(Intent{}, dt)
	}

	if c.Attached == nil || c.Attached.ID != 0 {
		t.Fatalf("expected attachment to structure 0, got %v", c.Attached)
	}
	if c.Vel.Y != 0 {
		t.Fatalf("vertical velocity %v after landing, want 0", c.Vel.Y)
	}
	if !c.OnGround() {
		t.Fatalf("not grounded after landing")
	}
	wantY := s.Registry().At(0).LandingHeight(s.Params())
	if math.Abs(c.Pos.Y-wantY) > 1e-9 {
		t.Fatalf("landing height %v, want %v", c.Pos.Y, wantY)
	}
}

func TestLandingEmitsEvent(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	c.Mode = ModeAirborne
	c.Pos = gamemath.Vec3{X: 10, Y: 4.5}
	c.Vel.Y = -2

	const dt = 1.0 / 60
	for i := 0; i < 60; i++ {
		for _, ev := range s.Step(Intent{}, dt) {
			if ev.Kind == EventLanded && ev.Structure == 0 {
				return
			}
		}
	}
	t.Fatalf("no landed event for structure 0")
}

func TestMaintainAttachmentWhileWandering(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Mode = ModeGrounded
	c.Attached = tower
	c.Pos = gamemath.Vec3{X: 10, Y: tower.LandingHeight(s.Params())}

	// Wander within the footprint: attachment and height must hold.
	const dt = 1.0 / 60
	for i := 0; i < 30; i++ {
		s.Step(Intent{MoveX: 1}, dt)
		s.Step(Intent{MoveX: -1}, dt)
		if c.Attached != tower {
			t.Fatalf("attachment lost while wandering on the roof at %v", c.Pos)
		}
		if math.Abs(c.Pos.Y-tower.LandingHeight(s.Params())) > 1e-9 {
			t.Fatalf("drifted off landing height: %v", c.Pos.Y)
		}
	}
}

func TestWalkOffRoofReleasesAttachment(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Mode = ModeGrounded
	c.Attached = tower
	c.Pos = gamemath.Vec3{X: 10, Y: tower.LandingHeight(s.Params())}

	const dt = 1.0 / 60
	var left bool
	for i := 0; i < 300; i++ {
		for _, ev := range s.Step(Intent{MoveX: -1}, dt) {
			if ev.Kind == EventLeftStructure && ev.Structure == 0 {
				left = true
			}
		}
		if left {
			break
		}
	}
	if !left {
		t.Fatalf("never released attachment while walking off the roof")
	}
	if c.Mode != ModeAirborne {
		t.Fatalf("mode %v after walking off, want airborne", c.Mode)
	}

	// With nothing underneath the character must end up on the ground.
	for i := 0; i < 300 && c.Mode != ModeGrounded; i++ {
		s.Step(Intent{}, dt)
	}
	if c.Pos.Y != 0 || c.Mode != ModeGrounded {
		t.Fatalf("did not settle on the ground: y=%v mode=%v", c.Pos.Y, c.Mode)
	}
}

func TestRoofToRoofJump(t *testing.T) {
	towerA := testTower()
	towerB := Structure{Pos: gamemath.Vec3{X: 18}, Height: 4, FootprintRadius: 3}
	s := newTestSim(t, towerA, towerB)
	c := s.Character()
	a := s.Registry().At(0)
	c.Mode = ModeGrounded
	c.Attached = a
	c.Pos = gamemath.Vec3{X: 10, Y: a.LandingHeight(s.Params())}

	const dt = 1.0 / 60
	for i := 0; i < 600; i++ {
		s.Step(Intent{MoveX: 1}, dt)
		if c.Attached != nil && c.Attached.ID == 1 {
			break
		}
		if c.Pos.Y <= 0.5 {
			t.Fatalf("fell into the gap at %v", c.Pos)
		}
	}
	if c.Attached == nil || c.Attached.ID != 1 {
		t.Fatalf("never caught the second roof, at %v attached=%v", c.Pos, c.Attached)
	}
}

func TestRoofCatchRequiresMotionToward(t *testing.T) {
	// Falling beside a roof while moving away must not snap onto it.
	tower := testTower()
	s := newTestSim(t, tower)
	c := s.Character()
	c.Mode = ModeAirborne
	c.Pos = gamemath.Vec3{X: 14, Y: 4.5} // inside the extended radius, outside the footprint
	c.Vel = gamemath.Vec3{X: 6, Y: -1}   // moving away from the tower

	s.Step(Intent{}, 1.0/60)
	if c.Attached != nil {
		t.Fatalf("caught the roof while moving away from it")
	}
}

func TestExitCooldownPreventsInstantRelanding(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Mode = ModeGrounded
	c.Attached = tower
	c.Pos = gamemath.Vec3{X: 10, Y: tower.LandingHeight(s.Params())}

	const dt = 1.0 / 60
	s.Step(Intent{Jump: true}, dt)
	if c.Attached != nil {
		t.Fatalf("still attached after jump")
	}

	for elapsed := dt; elapsed < s.Params().ExitCooldown; elapsed += dt {
		s.Step(Intent{Jump: true}, dt)
		if c.Attached != nil {
			t.Fatalf("re-attached %vs after jumping off, inside the cooldown", elapsed)
		}
	}
}

func TestSideCollisionPushback(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)

	const dt = 1.0 / 60
	// Run straight at the tower from the west at ground level.
	for i := 0; i < 300; i++ {
		s.Step(Intent{MoveX: 1}, dt)
	}

	d := gamemath.HorizDist(c.Pos, tower.Pos)
	if d < tower.FootprintRadius-1e-6 {
		t.Fatalf("ended up inside the footprint: dist %v < radius %v", d, tower.FootprintRadius)
	}
	if c.Pos.Y != 0 {
		t.Fatalf("pushed off the ground: y=%v", c.Pos.Y)
	}
}

func TestSidePushPreservesTangentialMotion(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	// Grazing the footprint edge while moving north: the tangential component
	// must survive the push.
	c.Pos = gamemath.Vec3{X: 7.5, Z: 0}
	c.Vel = gamemath.Vec3{X: 0, Z: 6}

	s.Step(Intent{MoveZ: 1}, 1.0/60)
	if c.Vel.Z < 1 {
		t.Fatalf("tangential velocity %v destroyed by side pushback", c.Vel.Z)
	}
}

func TestBoundaryClamp(t *testing.T) {
	s := newTestSim(t)
	c := s.Character()
	bound := s.Params().WorldBound

	const dt = 1.0 / 60
	for i := 0; i < 1200; i++ {
		s.Step(Intent{MoveX: 1, MoveZ: -1}, dt)
		if math.Abs(c.Pos.X) > bound || math.Abs(c.Pos.Z) > bound {
			t.Fatalf("position %v escaped the %v bound", c.Pos, bound)
		}
	}
}

func TestRegistryOrderBreaksLandingTies(t *testing.T) {
	// Two overlapping structures with identical tops: the first in registry
	// order must win the landing.
	a := Structure{Pos: gamemath.Vec3{X: 0}, Height: 4, FootprintRadius: 3}
	b := Structure{Pos: gamemath.Vec3{X: 1}, Height: 4, FootprintRadius: 3}
	s := newTestSim(t, a, b)
	c := s.Character()
	c.Mode = ModeAirborne
	c.Pos = gamemath.Vec3{X: 0.5, Y: 4.5}
	c.Vel.Y = -2

	const dt = 1.0 / 60
	for i := 0; i < 60 && c.Attached == nil; i++ {
		s.Step(Intent{}, dt)
	}
	if c.Attached == nil || c.Attached.ID != 0 {
		t.Fatalf("tie broken wrong: attached=%v, want structure 0", c.Attached)
	}
}
