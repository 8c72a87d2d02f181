package factory

import (
	"math"
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/archetypes"
	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/gamemath"
	"github.com/automoto/highrise/tags"
)

func CreateZombie(e *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	zombie := archetypes.Zombie.Spawn(e)

	size := cfg.Zombie.Radius * 2
	obj := resolv.NewObject(pos.X-size/2, pos.Z-size/2, size, size, tags.ResolvZombie)
	obj.Data = zombie
	components.Object.SetValue(zombie, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	components.Zombie.SetValue(zombie, components.ZombieData{
		State:   components.ZombieWander,
		Heading: rand.Float64() * 2 * math.Pi,
	})

	return zombie
}
