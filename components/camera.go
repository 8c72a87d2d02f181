package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // smoothed ground-plane focus, world units
	Yaw      float64   // orbit angle, radians
}

var Camera = donburi.NewComponentType[CameraData]()
