package factory

import (
	"math/rand"
	"time"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/archetypes"
	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/levels"
	"github.com/automoto/highrise/sim"
	"github.com/automoto/highrise/tags"
)

// CreatePlayer builds the player entity and its locomotion core from the
// loaded level.
func CreatePlayer(e *ecs.ECS, level *levels.Level, params sim.Params) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	params.WorldBound = level.Bound
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	core := sim.New(params, level.Registry(), level.Spawn, rng)
	components.Character.SetValue(player, components.CharacterData{Sim: core})

	size := cfg.Player.BodyRadius * 2
	obj := resolv.NewObject(level.Spawn.X-size/2, level.Spawn.Z-size/2, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
