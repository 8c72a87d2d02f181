// Package levels provides TMX city parsing. Maps are authored in Tiled on the
// ground plane: object positions are pixel XZ coordinates and elevation comes
// from object properties. It has no dependencies on ebitengine or donburi.
package levels

import (
	"embed"

	"github.com/automoto/highrise/gamemath"
	"github.com/automoto/highrise/sim"
)

//go:embed all:maps
var mapFS embed.FS

// PixelsPerUnit converts TMX pixel coordinates to world units.
const PixelsPerUnit = 16.0

// Level holds everything parsed from a TMX city file.
type Level struct {
	Name       string
	Bound      float64 // half-extent of the playable square
	Structures []sim.Structure
	Spawn      gamemath.Vec3
	Zombies    []gamemath.Vec3
	Pickups    []PickupSpawn
}

// PickupSpawn is a medkit location. Y is the elevation it sits at, so pickups
// can be placed on rooftops as well as the street.
type PickupSpawn struct {
	Pos gamemath.Vec3
}

// Registry builds the structure registry for the simulation core.
func (l *Level) Registry() *sim.Registry {
	return sim.NewRegistry(l.Structures)
}
