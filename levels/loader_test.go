package levels

import (
	"math"
	"testing"

	"github.com/automoto/highrise/gamemath"
)

func TestLoadCity(t *testing.T) {
	level, err := Load(mapFS, "maps/city.tmx")
	if err != nil {
		t.Fatalf("load city: %v", err)
	}

	if level.Name != "city" {
		t.Errorf("name %q, want city", level.Name)
	}
	if level.Bound != 60 {
		t.Errorf("bound %v, want 60 (120 tiles of 16px at %v px/unit, halved)", level.Bound, PixelsPerUnit)
	}
	if len(level.Structures) != 10 {
		t.Fatalf("%d structures, want 10", len(level.Structures))
	}
	if len(level.Zombies) != 6 {
		t.Errorf("%d zombie spawns, want 6", len(level.Zombies))
	}
	if len(level.Pickups) != 4 {
		t.Errorf("%d pickups, want 4", len(level.Pickups))
	}
	if level.Spawn != (gamemath.Vec3{}) {
		t.Errorf("player spawn %v, want map center", level.Spawn)
	}
}

func TestLoadCityStructureProperties(t *testing.T) {
	level, err := Load(mapFS, "maps/city.tmx")
	if err != nil {
		t.Fatalf("load city: %v", err)
	}

	var tower *struct {
		height, radius float64
		climbable      bool
		anchor         gamemath.Vec3
	}
	for _, st := range level.Structures {
		if st.Pos.X == 4 && st.Pos.Z == -20 {
			tower = &struct {
				height, radius float64
				climbable      bool
				anchor         gamemath.Vec3
			}{st.Height, st.FootprintRadius, st.Climbable, st.Anchor}
		}
		if st.Pos.X == 18 && st.Climbable {
			t.Errorf("structure at %v should not be climbable", st.Pos)
		}
	}
	if tower == nil {
		t.Fatalf("office tower at (4,-20) not found")
	}
	if tower.height != 12 || tower.radius != 6 || !tower.climbable {
		t.Errorf("tower height=%v radius=%v climbable=%v, want 12/6/true",
			tower.height, tower.radius, tower.climbable)
	}
	// Anchor sits on the footprint edge: center plus the authored offset.
	want := gamemath.Vec3{X: 10, Z: -20}
	if tower.anchor != want {
		t.Errorf("tower anchor %v, want %v", tower.anchor, want)
	}
}

func TestLoadCityRegistryOrderIsDeterministic(t *testing.T) {
	a, err := Load(mapFS, "maps/city.tmx")
	if err != nil {
		t.Fatalf("load city: %v", err)
	}
	b, err := Load(mapFS, "maps/city.tmx")
	if err != nil {
		t.Fatalf("reload city: %v", err)
	}
	for i := range a.Structures {
		if a.Structures[i].Pos != b.Structures[i].Pos {
			t.Fatalf("structure order differs between loads at index %d", i)
		}
		if i > 0 && !less(a.Structures[i-1].Pos, a.Structures[i].Pos) {
			t.Fatalf("structures not in authoring order at index %d", i)
		}
	}
}

func TestLoadCityElevatedPickups(t *testing.T) {
	level, err := Load(mapFS, "maps/city.tmx")
	if err != nil {
		t.Fatalf("load city: %v", err)
	}

	var elevated, grounded int
	for _, p := range level.Pickups {
		if p.Pos.Y > 0 {
			elevated++
			// Elevated pickups must sit near some rooftop so they are
			// actually reachable.
			reachable := false
			for _, st := range level.Structures {
				if gamemath.HorizDist(p.Pos, st.Pos) <= st.FootprintRadius &&
					math.Abs(p.Pos.Y-st.Height) < 1 {
					reachable = true
				}
			}
			if !reachable {
				t.Errorf("elevated pickup at %v is not on any rooftop", p.Pos)
			}
		} else {
			grounded++
		}
	}
	if elevated == 0 || grounded == 0 {
		t.Errorf("want a mix of rooftop and street pickups, got %d/%d", elevated, grounded)
	}
}
