package levels

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/highrise/gamemath"
	"github.com/automoto/highrise/sim"
)

// Load parses a TMX city file. It takes an fs.FS so callers can pass the
// embedded maps (client) or os.DirFS (tools, tests against fixtures).
//
// Expected object groups:
//
//	Structures  - ellipse objects; width/2 is the footprint radius, with
//	              float properties "height", "anchorDX", "anchorDZ" and a
//	              bool property "climbable"
//	PlayerSpawn - a single point object
//	Zombies     - point objects
//	Pickups     - point objects with an optional float property "height"
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)

	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Bound: math.Max(mapW, mapH) / 2 / PixelsPerUnit,
	}

	// Pixel coordinates are top-left anchored with the world origin at the
	// map center. X maps to world X, Y maps to world Z.
	toWorld := func(px, py float64) (float64, float64) {
		return (px - mapW/2) / PixelsPerUnit, (py - mapH/2) / PixelsPerUnit
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Structures":
			for _, o := range og.Objects {
				cx, cz := toWorld(o.X+o.Width/2, o.Y+o.Height/2)
				radius := o.Width / 2 / PixelsPerUnit
				height := o.Properties.GetFloat("height")
				if height <= 0 {
					return nil, fmt.Errorf("structure %d in %s has no height", o.ID, tmxPath)
				}
				st := sim.Structure{
					Pos:             gamemath.Vec3{X: cx, Z: cz},
					Height:          height,
					FootprintRadius: radius,
					Climbable:       o.Properties.GetBool("climbable"),
				}
				if st.Climbable {
					st.Anchor = gamemath.Vec3{
						X: cx + o.Properties.GetFloat("anchorDX"),
						Z: cz + o.Properties.GetFloat("anchorDZ"),
					}
				}
				level.Structures = append(level.Structures, st)
			}
			// Registry order is gameplay-visible (landing tie-breaks), so pin
			// it by sorting on position (X, then Z) rather than trusting XML
			// iteration order.
			sort.SliceStable(level.Structures, func(i, j int) bool {
				return less(level.Structures[i].Pos, level.Structures[j].Pos)
			})
		case "PlayerSpawn":
			for _, o := range og.Objects {
				x, z := toWorld(o.X, o.Y)
				level.Spawn = gamemath.Vec3{X: x, Z: z}
			}
		case "Zombies":
			for _, o := range og.Objects {
				x, z := toWorld(o.X, o.Y)
				level.Zombies = append(level.Zombies, gamemath.Vec3{X: x, Z: z})
			}
		case "Pickups":
			for _, o := range og.Objects {
				x, z := toWorld(o.X, o.Y)
				level.Pickups = append(level.Pickups, PickupSpawn{
					Pos: gamemath.Vec3{X: x, Y: o.Properties.GetFloat("height"), Z: z},
				})
			}
		}
	}

	if len(level.Structures) == 0 {
		return nil, fmt.Errorf("no Structures object group in %s", tmxPath)
	}
	return level, nil
}

// MustLoadCity loads the embedded city map and panics on failure. Called at
// startup where a broken embedded asset is unrecoverable.
func MustLoadCity() *Level {
	level, err := Load(mapFS, "maps/city.tmx")
	if err != nil {
		panic(fmt.Sprintf("load embedded city map: %v", err))
	}
	return level
}

func less(a, b gamemath.Vec3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Z < b.Z
}
