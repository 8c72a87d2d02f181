package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/sim"
	"github.com/automoto/highrise/tags"
)

// SimDT is the fixed timestep fed to the locomotion core. Ebiten ticks at 60
// TPS, so one update is one sim step.
const SimDT = 1.0 / 60

// UpdateSimulation feeds player intent into the locomotion core, steps it,
// and reacts to the events it emits. Runs after UpdateInput and before the
// camera so the follow target is this frame's position.
func UpdateSimulation(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	character := components.Character.Get(playerEntry)
	input := components.Input.Get(playerEntry)
	stats := components.Stats.Get(playerEntry)
	if stats.GameOver {
		return
	}
	stats.SurvivalFrames++

	var yaw float64
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		yaw = components.Camera.Get(cameraEntry).Yaw
	}

	intent := sim.Intent{
		MoveX:     input.MoveX,
		MoveZ:     input.MoveZ,
		Jump:      input.Pressed(cfg.ActionJump),
		Climb:     input.Pressed(cfg.ActionClimb),
		Recover:   input.Pressed(cfg.ActionRecover),
		CameraYaw: yaw,
	}

	// Fall speed going into the step decides landing shake; the step zeroes
	// it on touchdown.
	fallSpeed := -character.Sim.Character().Vel.Y

	events := character.Sim.Step(intent, SimDT)
	for _, ev := range events {
		handleSimEvent(e, playerEntry, ev, fallSpeed)
	}

	// Mirror the sim position into the ground-plane collision body.
	obj := components.Object.Get(playerEntry)
	pos := character.Sim.Character().Pos
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Z - obj.H/2
	obj.Update()

	if character.InvulnFrames > 0 {
		character.InvulnFrames--
	}
}

func handleSimEvent(e *ecs.ECS, playerEntry *donburi.Entry, ev sim.Event, fallSpeed float64) {
	switch ev.Kind {
	case sim.EventLanded:
		if fallSpeed >= cfg.Camera.LandShakeSpeed {
			TriggerScreenShake(e, cfg.Camera.LandShakeIntensity, cfg.Camera.ShakeFrames)
		}
	case sim.EventJumped, sim.EventLeftStructure:
		// Routine locomotion, nothing to show.
	case sim.EventClimbStarted:
		SetFlashMessage(playerEntry, "Climbing...")
	case sim.EventClimbFinished:
		SetFlashMessage(playerEntry, "Rooftop reached")
	case sim.EventRecovered:
		log.Printf("character recovered (structure %d)", ev.Structure)
		SetFlashMessage(playerEntry, "Recovered")
		TriggerScreenShake(e, cfg.Camera.RecoverIntensity, cfg.Camera.ShakeFrames)
	}
}
