package sim

import (
	"testing"

	"github.com/automoto/highrise/gamemath"
)

func stepIdle(s *Sim, seconds float64) []Event {
	const dt = 1.0 / 60
	var seen []Event
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		seen = append(seen, s.Step(Intent{}, dt)...)
	}
	return seen
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestUndergroundSelfHeals(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	c.Mode = ModeAirborne
	c.Pos = gamemath.Vec3{X: 10, Y: -5}

	stepIdle(s, s.Params().StuckPatience+1)

	if c.Pos.Y < 0 {
		t.Fatalf("still underground: y=%v", c.Pos.Y)
	}
	if !c.OnGround() {
		t.Fatalf("not supported after recovery")
	}
}

func TestIdleOnRooftopIsNotProblematic(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Attached = tower
	c.Pos = gamemath.Vec3{X: 10, Y: tower.LandingHeight(s.Params())}

	seen := stepIdle(s, s.Params().StuckPatience*3)

	if hasEvent(seen, EventRecovered) {
		t.Fatalf("idle rooftop stand triggered a recovery")
	}
	if c.Attached != tower {
		t.Fatalf("attachment lost while idle")
	}
}

func TestWedgedOnOpenGroundRecovers(t *testing.T) {
	// Stationary at ground level with nothing nearby to stand against reads
	// as wedged in unseen geometry and relocates with a nudge.
	far := Structure{Pos: gamemath.Vec3{X: 50}, Height: 4, FootprintRadius: 3}
	s := newTestSim(t, far)
	before := s.Character().Pos

	seen := stepIdle(s, s.Params().StuckPatience+1)

	if !hasEvent(seen, EventRecovered) {
		t.Fatalf("no recovery for a wedged ground position")
	}
	c := s.Character()
	if gamemath.HorizDist(c.Pos, before) < s.Params().RecoverNudge/2 {
		t.Fatalf("recovery did not move the character: %v -> %v", before, c.Pos)
	}
	if c.Pos.Y != 0 || !c.OnGround() {
		t.Fatalf("bad recovery placement: %v mode=%v", c.Pos, c.Mode)
	}
}

func TestGracePeriodSuppressesDetection(t *testing.T) {
	far := Structure{Pos: gamemath.Vec3{X: 50}, Height: 4, FootprintRadius: 3}
	s := newTestSim(t, far)

	// First recovery starts a grace window.
	seen := stepIdle(s, s.Params().StuckPatience+1)
	if !hasEvent(seen, EventRecovered) {
		t.Fatalf("setup recovery missing")
	}

	// Within the grace window nothing further may fire.
	seen = stepIdle(s, s.Params().GracePeriod-0.5)
	if hasEvent(seen, EventRecovered) {
		t.Fatalf("recovery fired inside the grace period")
	}
}

func TestManualRecoverFromMidair(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	c.Mode = ModeAirborne
	c.Pos = gamemath.Vec3{X: 30, Y: 40}

	events := s.Step(Intent{Recover: true}, 1.0/60)

	if !hasEvent(events, EventRecovered) {
		t.Fatalf("manual trigger produced no recovery")
	}
	if c.Pos.Y != 0 || !c.OnGround() {
		t.Fatalf("manual recovery placement: %v mode=%v", c.Pos, c.Mode)
	}
	if c.Vel != (gamemath.Vec3{}) {
		t.Fatalf("velocity %v after recovery, want zero", c.Vel)
	}
}

func TestManualRecoverPrefersPlausibleStructure(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	// Hovering beside the rooftop at a plausible height.
	c.Mode = ModeAirborne
	c.Pos = gamemath.Vec3{X: 14, Y: tower.Height + 1}
	c.Vel.Y = 0

	s.Step(Intent{Recover: true}, 1.0/60)

	if c.Attached != tower {
		t.Fatalf("expected relocation onto the tower, got attached=%v pos=%v", c.Attached, c.Pos)
	}
	if c.Pos.Y != tower.LandingHeight(s.Params()) {
		t.Fatalf("relocated to %v, want landing height %v", c.Pos.Y, tower.LandingHeight(s.Params()))
	}
}

func TestManualRecoverDuringClimbForcesCompletion(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	tower := s.Registry().At(0)
	c.Pos = gamemath.Vec3{X: tower.Anchor.X}

	const dt = 1.0 / 60
	s.Step(Intent{Climb: true}, dt)
	for i := 0; i < 10; i++ {
		s.Step(Intent{Climb: true}, dt)
	}

	events := s.Step(Intent{Climb: true, Recover: true}, dt)

	if !hasEvent(events, EventClimbFinished) {
		t.Fatalf("manual recovery mid-climb did not force completion")
	}
	if c.Attached != tower || c.Pos.Y != tower.LandingHeight(s.Params()) {
		t.Fatalf("forced completion state: y=%v attached=%v", c.Pos.Y, c.Attached)
	}
}

func TestResetRestoresSpawnDefaults(t *testing.T) {
	s := newTestSim(t, testTower())
	c := s.Character()
	c.Pos = gamemath.Vec3{X: 7, Y: 9, Z: -3}
	c.Vel = gamemath.Vec3{X: 1, Y: 2, Z: 3}
	c.Mode = ModeAirborne
	c.Attached = s.Registry().At(0)

	s.Reset()

	if c.Pos != (gamemath.Vec3{}) || c.Vel != (gamemath.Vec3{}) {
		t.Fatalf("reset left pos=%v vel=%v", c.Pos, c.Vel)
	}
	if !c.OnGround() || c.Attached != nil || c.Climb != nil {
		t.Fatalf("reset left mode=%v attached=%v climb=%v", c.Mode, c.Attached, c.Climb)
	}
}
