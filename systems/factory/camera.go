package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/highrise/archetypes"
	"github.com/automoto/highrise/components"
	"github.com/automoto/highrise/gamemath"
)

func CreateCamera(e *ecs.ECS, focus gamemath.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{
		Position: dmath.Vec2{X: focus.X, Y: focus.Z},
	})
	return camera
}
