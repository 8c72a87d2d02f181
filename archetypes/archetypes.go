package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Object,
		components.Health,
		components.Input,
		components.FlashMessage,
		components.Stats,
	)
	Zombie = newArchetype(
		tags.Zombie,
		components.Zombie,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
