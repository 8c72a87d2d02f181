package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/gamemath"
	"github.com/automoto/highrise/tags"
)

// UpdateCamera orbits and follows the character on the ground plane.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	// Orbit input turns the camera; the sim receives the resulting yaw so
	// move intent stays camera-relative.
	input := components.Input.Get(playerEntry)
	if input.Pressed(cfg.ActionCameraLeft) {
		camera.Yaw = gamemath.WrapAngle(camera.Yaw - cfg.Camera.YawSpeed*SimDT)
	}
	if input.Pressed(cfg.ActionCameraRight) {
		camera.Yaw = gamemath.WrapAngle(camera.Yaw + cfg.Camera.YawSpeed*SimDT)
	}

	pos := components.Character.Get(playerEntry).Sim.Character().Pos

	// Smoothed follow on the ground plane. Elevation is handled by the
	// renderer's projection, not the camera.
	camera.Position.X += (pos.X - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (pos.Z - camera.Position.Y) * cfg.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera)
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Duration <= 0 {
		return
	}
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress / cfg.Camera.PixelsPerUnit

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		shake.Duration = 0
		shake.Intensity = 0
		shake.Elapsed = 0
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	// Only override if new shake is stronger
	if shake.Duration > 0 && intensity <= shake.Intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}
