package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/archetypes"
	"github.com/automoto/highrise/components"
)

// CreateSpace builds the ground-plane collision space. Coordinates are world
// units, so the cell grid is coarse.
func CreateSpace(e *ecs.ECS, bound float64) *donburi.Entry {
	space := archetypes.Space.Spawn(e)
	size := int(bound*2) + 1
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(size, size, 4, 4),
	})
	return space
}
