package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/tags"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the player's InputData.
// Must run BEFORE UpdateSimulation in the system order.
func UpdateInput(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(playerEntry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.MoveX, input.MoveZ = 0, 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Analog left stick, with deadzone
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h > deadzone || h < -deadzone {
			input.MoveX = h
		}
		if v > deadzone || v < -deadzone {
			input.MoveZ = v
		}
	}

	// Fold digital move keys into the axes so the simulation only sees one
	// pair of values.
	if input.Current[cfg.ActionMoveLeft] {
		input.MoveX = -1
	}
	if input.Current[cfg.ActionMoveRight] {
		input.MoveX = 1
	}
	if input.Current[cfg.ActionMoveForward] {
		input.MoveZ = -1
	}
	if input.Current[cfg.ActionMoveBack] {
		input.MoveZ = 1
	}
}
