package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/archetypes"
	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/levels"
	"github.com/automoto/highrise/tags"
)

func CreatePickup(e *ecs.ECS, spawn levels.PickupSpawn) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(e)

	size := cfg.Pickup.Radius * 2
	obj := resolv.NewObject(spawn.Pos.X-size/2, spawn.Pos.Z-size/2, size, size, tags.ResolvPickup)
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	// Hover bob: a sequence of two tweens moving up and back down.
	h := float32(cfg.Pickup.HoverHeight)
	half := float32(cfg.Pickup.HoverPeriod / 2)
	bob := gween.NewSequence()
	bob.Add(
		gween.New(-h, h, half, ease.InOutSine),
		gween.New(h, -h, half, ease.InOutSine),
	)

	components.Pickup.SetValue(pickup, components.PickupData{
		Heal:  cfg.Pickup.HealAmount,
		BaseY: spawn.Pos.Y,
		Bob:   bob,
	})

	return pickup
}
