package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/archetypes"
	"github.com/automoto/highrise/components"
	"github.com/automoto/highrise/levels"
)

func CreateLevel(e *ecs.ECS) (*donburi.Entry, *levels.Level) {
	entry := archetypes.Level.Spawn(e)
	level := levels.MustLoadCity()
	components.Level.SetValue(entry, components.LevelData{Current: level})
	return entry, level
}
